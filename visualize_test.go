package main

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lg/bodyviz-api/internal/body"
)

// setupComputeTest returns a router with the public compute routes mounted
// on a Handler with no database.
func setupComputeTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handler{}
	router := gin.New()
	h.registerRoutes(router)
	return router
}

// doPost sends a JSON POST to path and returns the recorded response.
func doPost(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error body %q: %v", w.Body.String(), err)
	}
	return resp["error"]
}

/* ─── POST /api/metrics ──────────────────────────────────────────────── */

func TestMetrics_Success(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/metrics", `{"height_cm":175,"weight_kg":72,"sex":"male","age":28}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var m body.HealthMetrics
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if math.Abs(m.BMI-23.51) > 0.01 {
		t.Errorf("bmi = %f, want ~23.51", m.BMI)
	}
	if m.Category != "Normal" {
		t.Errorf("category = %q, want Normal", m.Category)
	}
	if m.IdealWeightRange != [2]float64{57, 76} {
		t.Errorf("ideal range = %v, want [57 76]", m.IdealWeightRange)
	}
}

func TestMetrics_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"height too low", `{"height_cm":50,"weight_kg":72,"sex":"male","age":28}`, "height_cm must be between 100 and 230"},
		{"missing weight", `{"height_cm":175,"sex":"male","age":28}`, "weight_kg must be between 30 and 250"},
		{"age too high", `{"height_cm":175,"weight_kg":72,"sex":"male","age":120}`, "age must be between 10 and 95"},
		{"bad sex", `{"height_cm":175,"weight_kg":72,"sex":"x","age":28}`, "sex must be one of: male, female"},
		{"malformed", `{"height_cm":`, "invalid request body"},
	}
	router := setupComputeTest()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doPost(router, "/api/metrics", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := errorMessage(t, w); got != tc.want {
				t.Errorf("error = %q, want %q", got, tc.want)
			}
		})
	}
}

/* ─── POST /api/segments ─────────────────────────────────────────────── */

func TestSegments_ClampsBMI(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/segments", `{"bmi":100,"sex":"female","target":"2d-front"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var d body.Descriptor
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if d.ShapeFactor != 1.2 {
		t.Errorf("shape_factor = %f, want 1.2", d.ShapeFactor)
	}
	if _, ok := d.Segments[body.SegHips]; !ok {
		t.Error("expected hips segment in response")
	}
}

func TestSegments_3DHasScaleAndRoots(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/segments", `{"bmi":30,"sex":"male","target":"3d"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var d body.Descriptor
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	leg := d.Segments[body.SegLegLeft]
	if leg.Scale == nil || leg.RootX == nil {
		t.Fatalf("expected scale and root_x on leg_left, got %+v", leg)
	}
	if *leg.RootX >= -0.13 {
		t.Errorf("leg_left root_x = %f, want < -0.13", *leg.RootX)
	}
}

func TestSegments_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing bmi", `{"sex":"male","target":"3d"}`, "bmi is required"},
		{"bad target", `{"bmi":22,"sex":"male","target":"4d"}`, "target must be one of: 2d-front, 2d-side, 3d"},
		{"bad sex", `{"bmi":22,"sex":"","target":"3d"}`, "sex must be one of: male, female"},
	}
	router := setupComputeTest()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doPost(router, "/api/segments", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := errorMessage(t, w); got != tc.want {
				t.Errorf("error = %q, want %q", got, tc.want)
			}
		})
	}
}

/* ─── POST /api/visualize ────────────────────────────────────────────── */

func TestVisualize_2DSide(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/visualize", `{"height_cm":170,"weight_kg":85,"sex":"male","age":40,"view":"side"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp visualizeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Descriptor.Target != body.Target2DSide {
		t.Errorf("target = %s, want 2d-side", resp.Descriptor.Target)
	}
	if resp.Scene != nil {
		t.Error("expected no scene for a 2d request")
	}
	if _, ok := resp.Descriptor.Segments[body.SegBelly]; !ok {
		t.Error("expected belly segment for side view")
	}
}

func TestVisualize_3DIncludesScene(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/visualize", `{"height_cm":160,"weight_kg":70,"sex":"female","age":30,"visual":"3d"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp visualizeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Scene == nil || len(resp.Scene.Primitives) != len(body.SegmentsFor(body.Target3D)) {
		t.Fatalf("expected a scene with every 3d primitive, got %+v", resp.Scene)
	}
	if resp.Scene.ShapeFactor != resp.Descriptor.ShapeFactor {
		t.Errorf("scene shape factor %f != descriptor %f", resp.Scene.ShapeFactor, resp.Descriptor.ShapeFactor)
	}
}

func TestVisualize_BadView(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/visualize", `{"height_cm":160,"weight_kg":70,"sex":"female","age":30,"view":"top"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

/* ─── POST /api/silhouette.svg ───────────────────────────────────────── */

func TestSilhouette_ReturnsSVG(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/silhouette.svg", `{"height_cm":175,"weight_kg":72,"sex":"male","age":28}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != svgContentType {
		t.Errorf("content type = %q, want %q", ct, svgContentType)
	}
	if !strings.HasPrefix(w.Body.String(), "<svg") || !strings.Contains(w.Body.String(), `data-target="2d-front"`) {
		t.Errorf("unexpected body: %.120s", w.Body.String())
	}
}

func TestSilhouette_Rejects3D(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/silhouette.svg", `{"height_cm":175,"weight_kg":72,"sex":"male","age":28,"visual":"3d"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

/* ─── Routing ────────────────────────────────────────────────────────── */

// TestRoutes_NoDatabase verifies stateful routes are not mounted without a pool.
func TestRoutes_NoDatabase(t *testing.T) {
	router := setupComputeTest()
	w := doPost(router, "/api/login", `{"username":"a","password":"b"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for /api/login without a DB, got %d", w.Code)
	}
}
