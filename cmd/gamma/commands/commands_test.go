package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/probability/distributions"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	rootCmd := NewRootCmd("v0.0.0-test")
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamma.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStatsTable(t *testing.T) {
	out, _, err := run(t, "stats", "--alpha", "3", "--beta", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"INDEX", "MEAN", "VARIANCE", "ENTROPY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "1.5", "0.75", "1.15443133"}, strings.Fields(lines[1]))
}

func TestStatsJSONBatch(t *testing.T) {
	out, _, err := run(t, "stats", "--alpha", "3,4", "--beta", "2,3", "-o", "json")
	require.NoError(t, err)

	var summary struct {
		Name              string  `json:"name"`
		DType             string  `json:"dtype"`
		BatchShape        []int32 `json:"batch_shape"`
		IsReparameterized bool    `json:"is_reparameterized"`
		Members           []struct {
			Mean     float64 `json:"mean"`
			Variance float64 `json:"variance"`
		} `json:"members"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	assert.Equal(t, "Gamma", summary.Name)
	assert.Equal(t, "float64", summary.DType)
	assert.Equal(t, []int32{2}, summary.BatchShape)
	assert.False(t, summary.IsReparameterized)
	require.Len(t, summary.Members, 2)
	assert.InDelta(t, 1.5, summary.Members[0].Mean, 1e-12)
	assert.InDelta(t, 4.0/3.0, summary.Members[1].Mean, 1e-12)
	assert.InDelta(t, 4.0/9.0, summary.Members[1].Variance, 1e-12)
}

func TestEvalTable(t *testing.T) {
	out, _, err := run(t, "eval", "--alpha", "3", "--beta", "2", "--x", "1", "--fn", "logpdf,pdf")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"X", "INDEX", "LOGPDF", "PDF"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "0", "-0.6137056389", "0.5413411329"}, strings.Fields(lines[1]))
}

func TestEvalFromConfigFile(t *testing.T) {
	path := writeConfig(t, `
alpha: [3, 4]
beta: [2, 3]
x: [1, 2]
fn: [cdf, logcdf]
output: json
`)

	out, _, err := run(t, "eval", "--config", path)
	require.NoError(t, err)

	var points []struct {
		X      float64            `json:"x"`
		Index  int                `json:"index"`
		Values map[string]float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	require.Len(t, points, 4)

	// x = 1, member 0: P(3, 2) = 1 - 5 exp(-2).
	assert.Equal(t, 1.0, points[0].X)
	assert.Equal(t, 0, points[0].Index)
	assert.InDelta(t, 1-5*math.Exp(-2), points[0].Values["cdf"], 1e-9)
	assert.InDelta(t, math.Log(points[0].Values["cdf"]), points[0].Values["logcdf"], 1e-9)

	// x = 2, member 1: P(4, 6).
	assert.Equal(t, 2.0, points[3].X)
	assert.Equal(t, 1, points[3].Index)
	assert.Greater(t, points[3].Values["cdf"], points[1].Values["cdf"])
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "alpha: [3]\nbeta: [2]\ndtype: float32\n")

	out, _, err := run(t, "stats", "--config", path, "--beta", "4", "-o", "yaml")
	require.NoError(t, err)

	var summary struct {
		DType   string `yaml:"dtype"`
		Members []struct {
			Mean float64 `yaml:"mean"`
		} `yaml:"members"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "float32", summary.DType)
	require.Len(t, summary.Members, 1)
	assert.InDelta(t, 0.75, summary.Members[0].Mean, 1e-6)
}

func TestProfileFromEnv(t *testing.T) {
	t.Setenv("GAMMA_ALPHA", "3,4")
	t.Setenv("GAMMA_BETA", "2")

	out, _, err := run(t, "profile", "--name", "Latency")
	require.NoError(t, err)

	var p Profile
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, []float64{3, 4}, p.Alpha)
	assert.Equal(t, []float64{2}, p.Beta)
	assert.Equal(t, "Latency", p.Name)
	assert.Equal(t, "float64", p.DType)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
		msg    string
	}{
		{"non-positive alpha", []string{"stats", "--alpha", "0", "--beta", "1"}, distributions.ErrDomain, "alpha must be positive"},
		{"non-positive x", []string{"eval", "--alpha", "3", "--beta", "2", "--x", "1,-1"}, distributions.ErrDomain, "x must be positive"},
		{"shape mismatch", []string{"stats", "--alpha", "1,2", "--beta", "1,2,3"}, distributions.ErrShape, "broadcasting"},
		{"missing alpha", []string{"stats", "--beta", "1"}, nil, "alpha and beta are required"},
		{"missing x", []string{"eval", "--alpha", "1", "--beta", "1"}, nil, "evaluation point"},
		{"unknown fn", []string{"eval", "--alpha", "1", "--beta", "1", "--x", "1", "--fn", "quantile"}, nil, "unknown function"},
		{"unknown output", []string{"stats", "--alpha", "1", "--beta", "1", "-o", "xml"}, nil, "unknown output format"},
		{"bad dtype", []string{"stats", "--alpha", "1", "--beta", "1", "--dtype", "int32"}, nil, "unsupported dtype"},
		{"bad log level", []string{"stats", "--alpha", "1", "--beta", "1", "--log-level", "TRACE"}, nil, "unrecognized log level"},
		{"missing config", []string{"stats", "--config", "/nonexistent/gamma.yaml"}, nil, "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target), "got %v", err)
			}
		})
	}
}

func TestErrorKind(t *testing.T) {
	_, _, err := run(t, "stats", "--alpha", "-1", "--beta", "1")
	require.Error(t, err)
	assert.Equal(t, "domain", errorKind(err))
	assert.Equal(t, "usage", errorKind(errors.New("boom")))
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gamma v0.0.0-test\n", out)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "stats", "--alpha", "3", "--beta", "2", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"distribution built"`)
}

func TestExecuteExitCode(t *testing.T) {
	assert.Equal(t, 0, Execute("v0.0.0-test", []string{"version"}))
	assert.Equal(t, 1, Execute("v0.0.0-test", []string{"stats", "--alpha", "-1", "--beta", "1"}))
}

func TestMetricsRecorded(t *testing.T) {
	_, _, err := run(t, "eval", "--alpha", "3", "--beta", "2", "--x", "1,2,3", "--fn", "cdf")
	require.NoError(t, err)

	var buf bytes.Buffer
	writeMetrics(&buf)
	assert.Contains(t, buf.String(), `gamma_evaluations_total{fn="cdf"}`)
	assert.Contains(t, buf.String(), `gamma_evaluation_duration_seconds`)
}

func TestJSONEncodesInfinity(t *testing.T) {
	out, _, err := run(t, "eval", "--alpha", "200", "--beta", "1", "--x", "0.001", "--fn", "logcdf", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"logcdf": "-Inf"`)
}
