// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	sqfstool "github.com/fwscan/go-sqfstool"
	"github.com/fwscan/go-sqfstool/platform"
)

// TestCheckInputSize implements test cases
func TestCheckInputSize(t *testing.T) {
	// prepare test cases
	cases := []struct {
		name        string
		input       int64
		config      *sqfstool.Config
		expectError bool
	}{
		{
			name:        "less bytes then maximum",
			input:       5,                                                 // within limit
			config:      sqfstool.NewConfig(sqfstool.WithMaxInputSize(10)), // 10
			expectError: false,
		},
		{
			name:        "more bytes then maximum",
			input:       15,                                                // over limit
			config:      sqfstool.NewConfig(sqfstool.WithMaxInputSize(10)), // 10
			expectError: true,
		},
		{
			name:        "disable input size check",
			input:       5000,                                              // ignored
			config:      sqfstool.NewConfig(sqfstool.WithMaxInputSize(-1)), // disable
			expectError: false,
		},
	}

	// run cases
	for i, tc := range cases {
		t.Run(fmt.Sprintf("tc %d", i), func(t *testing.T) {
			want := tc.expectError
			got := tc.config.CheckInputSize(tc.input) != nil
			if got != want {
				t.Errorf("test case %d failed: %s", i, tc.name)
			}
		})
	}
}

// TestWithMaxInputSize implements test cases
func TestWithMaxInputSize(t *testing.T) {
	maxInputSize := int64(1024)
	config := &sqfstool.Config{}
	option := sqfstool.WithMaxInputSize(maxInputSize)
	option(config)
	if config.MaxInputSize() != maxInputSize {
		t.Errorf("Expected MaxInputSize to be %d, but got %d", maxInputSize, config.MaxInputSize())
	}
}

func TestDefaults(t *testing.T) {
	cfg := sqfstool.NewConfig()

	if _, ok := cfg.Environment().(*platform.Os); !ok {
		t.Errorf("Environment() = %T, want *platform.Os", cfg.Environment())
	}
	if cfg.Placeholder() != "%e" {
		t.Errorf("Placeholder() = %q, want %q", cfg.Placeholder(), "%e")
	}
	if cfg.ProbeMode() != sqfstool.ProbeAuto {
		t.Errorf("ProbeMode() = %v, want %v", cfg.ProbeMode(), sqfstool.ProbeAuto)
	}
	if cfg.ProbeTimeout() != 5*time.Second {
		t.Errorf("ProbeTimeout() = %v, want %v", cfg.ProbeTimeout(), 5*time.Second)
	}
	if cfg.MaxInputSize() != 1<<30 {
		t.Errorf("MaxInputSize() = %v, want %v", cfg.MaxInputSize(), 1<<30)
	}
	if cfg.Logger() == nil {
		t.Error("Logger() = nil")
	}

	// the default hook must be callable
	cfg.TelemetryHook()(context.Background(), &sqfstool.TelemetryData{})
	(&sqfstool.Config{}).TelemetryHook()(context.Background(), &sqfstool.TelemetryData{})
}

func TestOptions(t *testing.T) {
	env := platform.NewMemory(platform.Windows)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	called := false

	cfg := sqfstool.NewConfig(
		sqfstool.WithEnvironment(env),
		sqfstool.WithLogger(logger),
		sqfstool.WithPlaceholder("{}"),
		sqfstool.WithProbeMode(sqfstool.ProbeNever),
		sqfstool.WithProbeTimeout(time.Second),
		sqfstool.WithTelemetryHook(func(ctx context.Context, td *sqfstool.TelemetryData) { called = true }),
	)

	if cfg.Environment() != env {
		t.Errorf("Environment() = %v, want %v", cfg.Environment(), env)
	}
	if cfg.Logger() != logger {
		t.Error("Logger() did not return the configured logger")
	}
	if cfg.Placeholder() != "{}" {
		t.Errorf("Placeholder() = %q, want %q", cfg.Placeholder(), "{}")
	}
	if cfg.ProbeMode() != sqfstool.ProbeNever {
		t.Errorf("ProbeMode() = %v, want %v", cfg.ProbeMode(), sqfstool.ProbeNever)
	}
	if cfg.ProbeTimeout() != time.Second {
		t.Errorf("ProbeTimeout() = %v, want %v", cfg.ProbeTimeout(), time.Second)
	}
	cfg.TelemetryHook()(context.Background(), nil)
	if !called {
		t.Error("TelemetryHook() did not return the configured hook")
	}
}

func TestOptionsIgnoreEmptyValues(t *testing.T) {
	cfg := sqfstool.NewConfig(
		sqfstool.WithEnvironment(nil),
		sqfstool.WithLogger(nil),
		sqfstool.WithPlaceholder(""),
	)
	if cfg.Environment() == nil {
		t.Error("Environment() = nil")
	}
	if cfg.Logger() == nil {
		t.Error("Logger() = nil")
	}
	if cfg.Placeholder() != sqfstool.SourceFilePlaceholder {
		t.Errorf("Placeholder() = %q, want %q", cfg.Placeholder(), sqfstool.SourceFilePlaceholder)
	}
}

// TestParseProbeMode implements test cases
func TestParseProbeMode(t *testing.T) {
	cases := []struct {
		in      string
		want    sqfstool.ProbeMode
		wantErr bool
	}{
		{"auto", sqfstool.ProbeAuto, false},
		{"always", sqfstool.ProbeAlways, false},
		{"never", sqfstool.ProbeNever, false},
		{"sometimes", sqfstool.ProbeAuto, true},
	}
	for _, tc := range cases {
		got, err := sqfstool.ParseProbeMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseProbeMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseProbeMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestParseVariant implements test cases
func TestParseVariant(t *testing.T) {
	for _, v := range sqfstool.Variants {
		got, err := sqfstool.ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := sqfstool.ParseVariant("middle-endian"); err == nil {
		t.Error("ParseVariant() expected error")
	}
	if got := sqfstool.Variant(9).String(); got != "Variant(9)" {
		t.Errorf("String() = %q", got)
	}
}
