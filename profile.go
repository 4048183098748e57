package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/bodyviz-api/internal/body"
)

// populateMetrics fills p.Metrics when every stat field is present.
func populateMetrics(p *bodyProfile) {
	if s, ok := p.stats(); ok {
		m := body.ComputeMetrics(s)
		p.Metrics = &m
	}
}

func (h *Handler) loadProfile(c *gin.Context, userID int) (bodyProfile, error) {
	return queryOne[bodyProfile](h.db, c,
		"SELECT * FROM body_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}

// getProfile returns the authenticated user's body profile with metrics.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.loadProfile(c, c.GetInt("user_id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return
	}
	populateMetrics(&p)
	c.JSON(http.StatusOK, p)
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Every provided field is validated before anything is written.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req patchProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if req.HeightCM != nil {
		if err := body.ValidateHeight(*req.HeightCM); err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		setClauses = append(setClauses, "height_cm = @heightCM")
		args["heightCM"] = *req.HeightCM
	}
	if req.WeightKG != nil {
		if err := body.ValidateWeight(*req.WeightKG); err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		setClauses = append(setClauses, "weight_kg = @weightKG")
		args["weightKG"] = *req.WeightKG
	}
	if req.Sex != nil {
		sex, err := validateSex(*req.Sex)
		if err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		setClauses = append(setClauses, "sex = @sex")
		args["sex"] = string(sex)
	}
	if req.Age != nil {
		if err := body.ValidateAge(*req.Age); err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		setClauses = append(setClauses, "age = @age")
		args["age"] = *req.Age
	}
	if req.View != nil {
		if _, ok := views[*req.View]; !ok {
			apiError(c, http.StatusBadRequest, "view must be one of: front, side")
			return
		}
		setClauses = append(setClauses, "view = @view")
		args["view"] = *req.View
	}
	if req.Visual != nil {
		if !visuals[*req.Visual] {
			apiError(c, http.StatusBadRequest, "visual must be one of: 2d, 3d")
			return
		}
		setClauses = append(setClauses, "visual = @visual")
		args["visual"] = *req.Visual
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := "UPDATE body_profiles SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"

	p, err := queryOne[bodyProfile](h.db, c, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	populateMetrics(&p)
	c.JSON(http.StatusOK, p)
}

// getProfileSilhouette renders the stored profile in its preferred 2D view.
// GET /api/profile/silhouette.svg?view=front|side (query overrides the profile).
func (h *Handler) getProfileSilhouette(c *gin.Context) {
	p, err := h.loadProfile(c, c.GetInt("user_id"))
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	stats, ok := p.stats()
	if !ok {
		apiError(c, http.StatusConflict, "profile is incomplete")
		return
	}
	target, err := resolveTarget("2d", c.DefaultQuery("view", p.View))
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.writeSilhouette(c, stats, target)
}
