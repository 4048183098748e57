package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lg/bodyviz-api/internal/body"
	"lg/bodyviz-api/internal/mannequin"
)

// run executes the CLI with args and a fresh flag state, isolated from any
// real ~/.bodyviz.yaml.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	homedir.DisableCache = true
	cfgFile = ""
	viper.Reset()
	bindFlags()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so state from one Execute
// does not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

/* ─── metrics ─── */

func TestMetrics_Defaults(t *testing.T) {
	out, err := run(t, "metrics")
	require.NoError(t, err)

	var got metricsReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, body.BodyStats{HeightCM: 175, WeightKG: 72, Sex: body.Male, Age: 28}, got.Stats)
	assert.InDelta(t, 23.51, got.Metrics.BMI, 0.01)
	assert.Equal(t, "Normal", got.Metrics.Category)
	assert.Equal(t, [2]float64{57, 76}, got.Metrics.IdealWeightRange)
}

func TestMetrics_YAML(t *testing.T) {
	out, err := run(t, "metrics", "--height", "180", "--weight", "90", "--sex", "Female", "--format", "yaml")
	require.NoError(t, err)

	var got metricsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, body.Female, got.Stats.Sex)
	assert.Equal(t, "Overweight", got.Metrics.Category)
}

func TestMetrics_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bodyviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: 160\nweight: 90\nsex: female\nage: 40\n"), 0o644))

	out, err := run(t, "metrics", "--config", path)
	require.NoError(t, err)

	var got metricsReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, body.BodyStats{HeightCM: 160, WeightKG: 90, Sex: body.Female, Age: 40}, got.Stats)
	assert.Equal(t, "Obese", got.Metrics.Category)
}

func TestMetrics_OutOfBounds(t *testing.T) {
	_, err := run(t, "metrics", "--height", "90")
	assert.EqualError(t, err, "height_cm must be between 100 and 230")

	_, err = run(t, "metrics", "--sex", "other")
	assert.ErrorIs(t, err, body.ErrUnknownSex)

	_, err = run(t, "metrics", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

/* ─── segments / svg / mannequin ─── */

func TestSegments_BMIOverride(t *testing.T) {
	out, err := run(t, "segments", "--target", "2d-front", "--bmi", "100")
	require.NoError(t, err)

	var got body.Descriptor
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, body.Target2DFront, got.Target)
	assert.InDelta(t, 1.2, got.ShapeFactor, 1e-9)
}

func TestSegments_UnknownTarget(t *testing.T) {
	_, err := run(t, "segments", "--target", "4d")
	assert.ErrorIs(t, err, body.ErrUnknownTarget)
}

func TestSVG_Stdout(t *testing.T) {
	out, err := run(t, "svg", "--view", "side")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `data-target="2d-side"`)

	_, err = run(t, "svg", "--view", "back")
	assert.Error(t, err)
}

func TestSVG_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	_, err := run(t, "svg", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-target="2d-front"`)
}

func TestMannequin(t *testing.T) {
	out, err := run(t, "mannequin", "--weight", "120")
	require.NoError(t, err)

	var got mannequin.Scene
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Primitives, len(mannequin.Rest()))
	assert.Greater(t, got.ShapeFactor, 0.5)
}
