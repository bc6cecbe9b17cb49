// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwscan/go-sqfstool/platform"
	"github.com/fwscan/go-sqfstool/resolver"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// ProbeMode decides when a resolved tool is checked for invocability before a
// descriptor is handed out.
type ProbeMode int

const (
	// ProbeAuto probes only on Windows, where PATH resolution is unreliable.
	ProbeAuto ProbeMode = iota

	// ProbeAlways probes on every platform.
	ProbeAlways

	// ProbeNever never probes.
	ProbeNever
)

// String returns the name of the probe mode.
func (m ProbeMode) String() string {
	switch m {
	case ProbeAuto:
		return "auto"
	case ProbeAlways:
		return "always"
	case ProbeNever:
		return "never"
	}
	return fmt.Sprintf("ProbeMode(%d)", int(m))
}

// ParseProbeMode returns the probe mode with the given name.
func ParseProbeMode(s string) (ProbeMode, error) {
	for _, m := range []ProbeMode{ProbeAuto, ProbeAlways, ProbeNever} {
		if m.String() == s {
			return m, nil
		}
	}
	return ProbeAuto, fmt.Errorf("unknown probe mode %q", s)
}

// SourceFilePlaceholder is the default token that stands in for the input file
// path in descriptor arguments. The execution collaborator substitutes it.
const SourceFilePlaceholder = "%e"

// Config provides a configuration struct and options to adjust the configuration.
//
// The configuration struct holds all configuration options for resolution,
// descriptor building and classification. The configuration options can be
// adjusted using the option pattern style.
type Config struct {
	// environment is the host (or a fake of it) tools are looked up in
	environment platform.Environment

	// logger stream for resolution and classification
	logger logger

	// maxInputSize is the maximum number of bytes read for classification.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// placeholder stands in for the input file in the arguments
	placeholder string

	// probeMode decides when tools are probed for invocability
	probeMode ProbeMode

	// probeTimeout bounds every probe spawn, <= 0 disables the bound
	probeTimeout time.Duration

	// telemetryHook is a function to consume telemetry data after a descriptor is built
	// Important: do not adjust this value after resolution started
	telemetryHook TelemetryHook
}

// Environment returns the platform environment.
func (c *Config) Environment() platform.Environment {
	return c.environment
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxInputSize returns the maximum size of the input.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// Placeholder returns the source file placeholder.
func (c *Config) Placeholder() string {
	return c.placeholder
}

// ProbeMode returns the probe policy.
func (c *Config) ProbeMode() ProbeMode {
	return c.probeMode
}

// ProbeTimeout returns the bound of a single probe spawn.
func (c *Config) ProbeTimeout() time.Duration {
	return c.probeTimeout
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

// CheckInputSize checks if size exceeds the configured maximum. If the maximum is
// exceeded, a [ErrMaxInputSizeExceeded] error is returned.
func (c *Config) CheckInputSize(size int64) error {

	// check if disabled
	if c.MaxInputSize() == -1 {
		return nil
	}

	// check value
	if size > c.MaxInputSize() {
		return ErrMaxInputSizeExceeded
	}
	return nil
}

// shouldProbe reports whether tools resolved for profile need a probe.
func (c *Config) shouldProbe(profile platform.Profile) bool {
	switch c.probeMode {
	case ProbeAlways:
		return true
	case ProbeNever:
		return false
	}
	return profile == platform.Windows
}

// resolver returns a resolver looking into the configured environment.
func (c *Config) resolver() *resolver.Resolver {
	return resolver.New(c.environment,
		resolver.WithLogger(c.logger),
		resolver.WithProbeTimeout(c.probeTimeout),
	)
}

const (
	defaultMaxInputSize = 1 << (10 * 3)   // 1 Gb
	defaultProbeMode    = ProbeAuto       // probe on windows only
	defaultProbeTimeout = 5 * time.Second // per spawned probe
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		environment:   platform.NewOs(),
		logger:        defaultLogger,
		maxInputSize:  defaultMaxInputSize,
		placeholder:   SourceFilePlaceholder,
		probeMode:     defaultProbeMode,
		probeTimeout:  defaultProbeTimeout,
		telemetryHook: defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithEnvironment options pattern function to set the environment tools are
// looked up in. Use [platform.NewMemory] to resolve against a fake host.
func WithEnvironment(env platform.Environment) ConfigOption {
	return func(c *Config) {
		if env != nil {
			c.environment = env
		}
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxInputSize options pattern function to set the maximum number of bytes
// read for classification. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithPlaceholder options pattern function to set the token that stands in for
// the input file. An empty token is ignored.
func WithPlaceholder(placeholder string) ConfigOption {
	return func(c *Config) {
		if len(placeholder) > 0 {
			c.placeholder = placeholder
		}
	}
}

// WithProbeMode options pattern function to set when tools are probed.
func WithProbeMode(mode ProbeMode) ConfigOption {
	return func(c *Config) {
		c.probeMode = mode
	}
}

// WithProbeTimeout options pattern function to bound every probe spawn. (<= 0 to disable)
func WithProbeTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.probeTimeout = timeout
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is
// called after a descriptor is built.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
