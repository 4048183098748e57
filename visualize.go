package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/bodyviz-api/internal/body"
	"lg/bodyviz-api/internal/mannequin"
	"lg/bodyviz-api/internal/silhouette"
)

const svgContentType = "image/svg+xml"

// postMetrics handles POST /api/metrics. Body: BodyStats. Returns HealthMetrics.
func (h *Handler) postMetrics(c *gin.Context) {
	var req bodyStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	stats, err := req.toStats()
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, body.ComputeMetrics(stats))
}

// postSegments handles POST /api/segments. Body: { "bmi", "sex", "target" }.
// BMI is not range-checked; the scaling model clamps it.
func (h *Handler) postSegments(c *gin.Context) {
	var req segmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BMI == nil {
		apiError(c, http.StatusBadRequest, "bmi is required")
		return
	}
	sex, err := validateSex(req.Sex)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	target, err := body.ParseTarget(req.Target)
	if err != nil {
		apiError(c, http.StatusBadRequest, "target must be one of: 2d-front, 2d-side, 3d")
		return
	}

	d, err := body.Describe(*req.BMI, sex, target)
	if err != nil {
		log.Printf("[postSegments] describe: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to compute segments")
		return
	}
	c.JSON(http.StatusOK, d)
}

// postVisualize handles POST /api/visualize: metrics, the scale descriptor
// for the requested view, and the posed mannequin when visual is 3d.
func (h *Handler) postVisualize(c *gin.Context) {
	var req visualizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	stats, err := req.toStats()
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	target, err := resolveTarget(req.Visual, req.View)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := visualize(stats, target)
	if err != nil {
		log.Printf("[postVisualize] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to build visualization")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// visualize runs the full recompute chain for one set of inputs.
func visualize(stats body.BodyStats, target body.Target) (visualizeResponse, error) {
	metrics := body.ComputeMetrics(stats)
	d, err := body.Describe(metrics.BMI, stats.Sex, target)
	if err != nil {
		return visualizeResponse{}, err
	}
	resp := visualizeResponse{Stats: stats, Metrics: metrics, Descriptor: d}
	if target.Is3D() {
		scene, err := mannequin.Build(d)
		if err != nil {
			return visualizeResponse{}, err
		}
		resp.Scene = &scene
	}
	return resp, nil
}

// postSilhouette handles POST /api/silhouette.svg and returns the 2D outline.
func (h *Handler) postSilhouette(c *gin.Context) {
	var req visualizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Visual == "3d" {
		apiError(c, http.StatusBadRequest, "silhouette is only available for 2d")
		return
	}
	stats, err := req.toStats()
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	target, err := resolveTarget("2d", req.View)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.writeSilhouette(c, stats, target)
}

// writeSilhouette renders stats for a 2D target and writes it as SVG.
func (h *Handler) writeSilhouette(c *gin.Context, stats body.BodyStats, target body.Target) {
	d, err := body.Describe(body.BMI(stats.HeightCM, stats.WeightKG), stats.Sex, target)
	if err != nil {
		log.Printf("[writeSilhouette] describe: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to render silhouette")
		return
	}
	svg, err := silhouette.Render(d, silhouette.Options{})
	if err != nil {
		log.Printf("[writeSilhouette] render: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to render silhouette")
		return
	}
	c.Data(http.StatusOK, svgContentType, []byte(svg))
}
