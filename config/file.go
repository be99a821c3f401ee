package config

import (
	"fmt"
	"os"
	"time"

	json "github.com/json-iterator/go"
)

// file mirrors Config in a JSON-friendly form. Pointers distinguish omitted keys from
// explicit zero values, so only presented keys override the defaults.
type file struct {
	Headers struct {
		Prealloc        *int  `json:"prealloc"`
		CaseInsensitive *bool `json:"case_insensitive"`
	} `json:"headers"`
	Body struct {
		RespectContentLength *bool `json:"respect_content_length"`
	} `json:"body"`
	NET struct {
		ReadBufferSize            *int    `json:"read_buffer_size"`
		ReadTimeout               *string `json:"read_timeout"`
		AcceptLoopInterruptPeriod *string `json:"accept_loop_interrupt_period"`
		WriteBufferSize           *int    `json:"write_buffer_size"`
	} `json:"net"`
	Files struct {
		Root *string `json:"root"`
	} `json:"files"`
}

// Load reads a JSON config file and applies it on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse applies JSON-encoded settings on top of Default(). Durations are expected in the
// time.ParseDuration format, e.g. "30s".
func Parse(data []byte) (*Config, error) {
	var f file
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	set(&cfg.Headers.Prealloc, f.Headers.Prealloc)
	set(&cfg.Headers.CaseInsensitive, f.Headers.CaseInsensitive)
	set(&cfg.Body.RespectContentLength, f.Body.RespectContentLength)
	set(&cfg.NET.ReadBufferSize, f.NET.ReadBufferSize)
	set(&cfg.NET.WriteBufferSize, f.NET.WriteBufferSize)
	set(&cfg.Files.Root, f.Files.Root)

	if err := setDuration(&cfg.NET.ReadTimeout, f.NET.ReadTimeout); err != nil {
		return nil, fmt.Errorf("config: net.read_timeout: %w", err)
	}

	if err := setDuration(&cfg.NET.AcceptLoopInterruptPeriod, f.NET.AcceptLoopInterruptPeriod); err != nil {
		return nil, fmt.Errorf("config: net.accept_loop_interrupt_period: %w", err)
	}

	if cfg.NET.ReadBufferSize <= 0 {
		return nil, fmt.Errorf("config: net.read_buffer_size must be positive, got %d", cfg.NET.ReadBufferSize)
	}

	if cfg.NET.AcceptLoopInterruptPeriod <= 0 {
		return nil, fmt.Errorf("config: net.accept_loop_interrupt_period must be positive")
	}

	return cfg, nil
}

func set[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

func setDuration(dst *time.Duration, value *string) error {
	if value == nil {
		return nil
	}

	d, err := time.ParseDuration(*value)
	if err != nil {
		return err
	}

	*dst = d
	return nil
}
