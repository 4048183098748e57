package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/bodyviz-api/internal/body"
)

const dateLayout = "2006-01-02"

func withMetrics(entries []statsEntry) []statsEntry {
	for i := range entries {
		m := body.ComputeMetrics(entries[i].stats())
		entries[i].Metrics = &m
	}
	return entries
}

// getStatsLog returns the user's snapshots within [start, end], oldest first.
// GET /api/stats-log?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params required.
func (h *Handler) getStatsLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return
	}
	if _, err := time.Parse(dateLayout, start); err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	entries, err := queryMany[statsEntry](h.db, c,
		`SELECT * FROM body_stats_log
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch stats log")
		return
	}
	if entries == nil {
		entries = []statsEntry{}
	}

	c.JSON(http.StatusOK, withMetrics(entries))
}

// upsertStatsEntry records a snapshot for a date, replacing any existing one.
// POST /api/stats-log. Body: { "date", "height_cm", "weight_kg", "sex", "age" }.
func (h *Handler) upsertStatsEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req upsertStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" {
		apiError(c, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	stats, err := req.toStats()
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := queryOne[statsEntry](h.db, c,
		`INSERT INTO body_stats_log (user_id, date, height_cm, weight_kg, sex, age)
		 VALUES (@userID, @date, @heightCM, @weightKG, @sex, @age)
		 ON CONFLICT (user_id, date) DO UPDATE SET
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			sex       = EXCLUDED.sex,
			age       = EXCLUDED.age
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":   userID,
			"date":     req.Date,
			"heightCM": stats.HeightCM,
			"weightKG": stats.WeightKG,
			"sex":      string(stats.Sex),
			"age":      stats.Age,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to upsert stats entry")
		return
	}

	c.JSON(http.StatusCreated, withMetrics([]statsEntry{entry})[0])
}

// updateStatsEntry partially updates a snapshot. Omitted fields keep their values.
// PUT /api/stats-log/:id.
func (h *Handler) updateStatsEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	var req updateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date != nil {
		if _, err := time.Parse(dateLayout, *req.Date); err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}
	if req.HeightCM != nil {
		if err := body.ValidateHeight(*req.HeightCM); err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.WeightKG != nil {
		if err := body.ValidateWeight(*req.WeightKG); err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Age != nil {
		if err := body.ValidateAge(*req.Age); err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	var sex *string
	if req.Sex != nil {
		s, err := validateSex(*req.Sex)
		if err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		v := string(s)
		sex = &v
	}

	entry, err := queryOne[statsEntry](h.db, c,
		`UPDATE body_stats_log SET
			date      = COALESCE(@date, date),
			height_cm = COALESCE(@heightCM, height_cm),
			weight_kg = COALESCE(@weightKG, weight_kg),
			sex       = COALESCE(@sex, sex),
			age       = COALESCE(@age, age)
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"id":       id,
			"userID":   userID,
			"date":     req.Date,
			"heightCM": req.HeightCM,
			"weightKG": req.WeightKG,
			"sex":      sex,
			"age":      req.Age,
		})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "stats entry not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update stats entry")
		}
		return
	}

	c.JSON(http.StatusOK, withMetrics([]statsEntry{entry})[0])
}

// deleteStatsEntry removes a snapshot by ID. DELETE /api/stats-log/:id.
func (h *Handler) deleteStatsEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	result, err := h.db.Exec(c,
		"DELETE FROM body_stats_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete stats entry")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "stats entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}
