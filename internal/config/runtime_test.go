package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"ALGOVIZ_CONFIG", "HTTP_ADDR", "ALGOVIZ_MAX_BODY_BYTES", "ALGOVIZ_MAX_TRACE_CELLS", "ALGOVIZ_OBS_BUFFER", "ALGOVIZ_LOG_LEVEL", "ALGOVIZ_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	rt, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), rt)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "algoviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":9000\"\nobs_buffer: 16\nlog_format: text\nmax_trace_cells: 5000\n"), 0o600))

	t.Setenv("ALGOVIZ_CONFIG", path)
	t.Setenv("ALGOVIZ_OBS_BUFFER", "64")

	rt, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", rt.HTTPAddr)
	assert.Equal(t, 64, rt.ObsBuffer)
	assert.Equal(t, "text", rt.LogFormat)
	assert.Equal(t, 1<<20, rt.MaxBodyBytes)
	assert.Equal(t, 5000, rt.MaxTraceCells)
}

func TestLoad_MaxTraceCellsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALGOVIZ_MAX_TRACE_CELLS", "1000")
	rt, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, rt.MaxTraceCells)

	t.Setenv("ALGOVIZ_MAX_TRACE_CELLS", "-5")
	rt, err = Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults().MaxTraceCells, rt.MaxTraceCells)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALGOVIZ_MAX_BODY_BYTES", "zero")
	rt, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1<<20, rt.MaxBodyBytes)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALGOVIZ_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
