package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Runtime struct {
	HTTPAddr     string `yaml:"http_addr"`
	MaxBodyBytes int    `yaml:"max_body_bytes"`
	// MaxTraceCells bounds the estimated trace size of one solve.
	MaxTraceCells int    `yaml:"max_trace_cells"`
	ObsBuffer     int    `yaml:"obs_buffer"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

func Defaults() Runtime {
	return Runtime{
		HTTPAddr:      ":8080",
		MaxBodyBytes:  1 << 20,
		MaxTraceCells: 200_000,
		ObsBuffer:     4096,
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// Load starts from Defaults, applies the YAML file named by ALGOVIZ_CONFIG
// when set, then the environment. Environment values win.
func Load() (Runtime, error) {
	rt := Defaults()

	if path := os.Getenv("ALGOVIZ_CONFIG"); path != "" {
		if err := rt.mergeFile(path); err != nil {
			return Runtime{}, err
		}
	}

	rt.HTTPAddr = getenv("HTTP_ADDR", rt.HTTPAddr)
	rt.MaxBodyBytes = getenvInt("ALGOVIZ_MAX_BODY_BYTES", rt.MaxBodyBytes, 1)
	rt.MaxTraceCells = getenvInt("ALGOVIZ_MAX_TRACE_CELLS", rt.MaxTraceCells, 1)
	rt.ObsBuffer = getenvInt("ALGOVIZ_OBS_BUFFER", rt.ObsBuffer, 1)
	rt.LogLevel = strings.ToLower(getenv("ALGOVIZ_LOG_LEVEL", rt.LogLevel))
	rt.LogFormat = strings.ToLower(getenv("ALGOVIZ_LOG_FORMAT", rt.LogFormat))
	return rt, nil
}

func (rt *Runtime) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var file Runtime
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.HTTPAddr != "" {
		rt.HTTPAddr = file.HTTPAddr
	}
	if file.MaxBodyBytes > 0 {
		rt.MaxBodyBytes = file.MaxBodyBytes
	}
	if file.MaxTraceCells > 0 {
		rt.MaxTraceCells = file.MaxTraceCells
	}
	if file.ObsBuffer > 0 {
		rt.ObsBuffer = file.ObsBuffer
	}
	if file.LogLevel != "" {
		rt.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		rt.LogFormat = file.LogFormat
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback, min int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}
