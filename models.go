package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/bodyviz-api/internal/body"
	"lg/bodyviz-api/internal/mannequin"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate lets pgx scan PostgreSQL date columns into DateOnly.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// bodyProfile maps to body_profiles: the user's current inputs and view
// preferences. Stat fields are nullable until setup is finished.
type bodyProfile struct {
	UserID    int        `json:"user_id"    db:"user_id"`
	HeightCM  *float64   `json:"height_cm"  db:"height_cm"`
	WeightKG  *float64   `json:"weight_kg"  db:"weight_kg"`
	Sex       *string    `json:"sex"        db:"sex"`
	Age       *int       `json:"age"        db:"age"`
	View      string     `json:"view"       db:"view"`
	Visual    string     `json:"visual"     db:"visual"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`

	// Computed from the stat fields; never stored.
	Metrics *body.HealthMetrics `json:"metrics,omitempty" db:"-"`
}

// stats returns the profile as BodyStats, or ok=false while any field is unset.
func (p *bodyProfile) stats() (body.BodyStats, bool) {
	if p.HeightCM == nil || p.WeightKG == nil || p.Sex == nil || p.Age == nil {
		return body.BodyStats{}, false
	}
	return body.BodyStats{HeightCM: *p.HeightCM, WeightKG: *p.WeightKG, Sex: body.Sex(*p.Sex), Age: *p.Age}, true
}

// statsEntry maps to body_stats_log. One snapshot per user per date.
type statsEntry struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	HeightCM  float64    `json:"height_cm"  db:"height_cm"`
	WeightKG  float64    `json:"weight_kg"  db:"weight_kg"`
	Sex       string     `json:"sex"        db:"sex"`
	Age       int        `json:"age"        db:"age"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`

	Metrics *body.HealthMetrics `json:"metrics,omitempty" db:"-"`
}

func (e *statsEntry) stats() body.BodyStats {
	return body.BodyStats{HeightCM: e.HeightCM, WeightKG: e.WeightKG, Sex: body.Sex(e.Sex), Age: e.Age}
}

/* ─── Request / Response types ───────────────────────────────────────── */

// bodyStatsRequest is the wire form of BodyStats shared by the compute routes.
type bodyStatsRequest struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	Sex      string  `json:"sex"`
	Age      int     `json:"age"`
}

// segmentsRequest is the body for POST /api/segments.
type segmentsRequest struct {
	BMI    *float64 `json:"bmi"`
	Sex    string   `json:"sex"`
	Target string   `json:"target"`
}

// visualizeRequest is the body for POST /api/visualize and /api/silhouette.svg.
// View is front|side (2D only); Visual is 2d|3d.
type visualizeRequest struct {
	bodyStatsRequest
	View   string `json:"view"`
	Visual string `json:"visual"`
}

// visualizeResponse bundles everything a client needs to redraw after an edit.
type visualizeResponse struct {
	Stats      body.BodyStats     `json:"stats"`
	Metrics    body.HealthMetrics `json:"metrics"`
	Descriptor body.Descriptor    `json:"descriptor"`
	Scene      *mannequin.Scene   `json:"scene,omitempty"`
}

// patchProfileRequest is the body for PATCH /api/profile. Only non-nil fields are written.
type patchProfileRequest struct {
	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
	Sex      *string  `json:"sex"`
	Age      *int     `json:"age"`
	View     *string  `json:"view"`
	Visual   *string  `json:"visual"`
}

// upsertStatsRequest is the body for POST /api/stats-log.
type upsertStatsRequest struct {
	Date string `json:"date"`
	bodyStatsRequest
}

// updateStatsRequest is the body for PUT /api/stats-log/:id.
type updateStatsRequest struct {
	Date     *string  `json:"date"`
	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
	Sex      *string  `json:"sex"`
	Age      *int     `json:"age"`
}
