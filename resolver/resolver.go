// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwscan/go-sqfstool/platform"
)

// Logger is the logging interface the resolver reports through. [*slog.Logger]
// satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Option is a function pointer to implement the option pattern
type Option func(*Resolver)

// defaultProbeTimeout bounds a single --help probe.
const defaultProbeTimeout = 5 * time.Second

// Resolver looks up utilities in an [platform.Environment]. It holds no state
// besides its configuration; every call probes the environment again.
type Resolver struct {
	env          platform.Environment
	logger       Logger
	probeTimeout time.Duration
}

// New creates a resolver for env.
func New(env platform.Environment, opts ...Option) *Resolver {
	r := &Resolver{
		env:          env,
		logger:       slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})),
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLogger options pattern function to set the logger.
func WithLogger(logger Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithProbeTimeout options pattern function to bound every process spawned by
// [Resolver.IsAvailable]. A value <= 0 disables the bound.
func WithProbeTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.probeTimeout = d
	}
}

// Environment returns the environment the resolver looks into.
func (r *Resolver) Environment() platform.Environment {
	return r.env
}

// Resolve returns the best available utility for op. It never fails: if nothing
// is found the preferred tool name is returned with [Unconfirmed] confidence.
func (r *Resolver) Resolve(op Operation) Result {
	var res Result
	switch op {
	case OperationExtractV4BigEndian:
		res = r.resolveSingle(r.v4BigEndianTool(), KindNative)
	case OperationCreate:
		res = r.resolveSingle(r.createTool(), KindPacker)
	default:
		res = r.resolveExtractor()
	}
	res.Operation = op
	return res
}

// resolveExtractor implements the primary lookup chain shared by the generic,
// little endian and big endian extraction variants.
func (r *Resolver) resolveExtractor() Result {
	profile := r.env.Profile()

	if profile == platform.Windows {
		for _, candidate := range windowsExtractCandidates {
			if r.env.Exists(candidate) {
				r.logger.Debug("found squashfs tool", "tool", candidate)
				return Result{Tool: Tool{Name: candidate, Path: candidate, Kind: KindNative}, Confidence: Found}
			}
		}
	} else {
		for _, name := range unixExtractTools {
			if path, ok := r.which(name); ok {
				r.logger.Debug("found squashfs tool", "tool", name, "path", path)
				return Result{Tool: Tool{Name: name, Path: path, Kind: KindNative}, Confidence: Found}
			}
		}
	}

	// try 7-Zip as a stand-in
	if name, ok := r.FindArchiver(); ok {
		r.logger.Debug("using 7-Zip as squashfs extraction fallback", "tool", name)
		return Result{Tool: Tool{Name: name, Path: name, Kind: KindArchiver}, Confidence: Fallback}
	}

	def := r.defaultExtractTool()
	r.logger.Warn("no squashfs extraction tool found, using default", "tool", def, "platform", profile)
	return Result{Tool: Tool{Name: def, Kind: KindNative}, Confidence: Unconfirmed}
}

// resolveSingle looks up exactly one candidate without a fallback chain.
func (r *Resolver) resolveSingle(name string, kind Kind) Result {
	if path, ok := r.present(name); ok {
		r.logger.Debug("found squashfs tool", "tool", name, "path", path)
		return Result{Tool: Tool{Name: name, Path: path, Kind: kind}, Confidence: Found}
	}
	r.logger.Warn("squashfs tool not found, using default", "tool", name, "platform", r.env.Profile())
	return Result{Tool: Tool{Name: name, Kind: kind}, Confidence: Unconfirmed}
}

// present checks a single candidate the way the platform does it: Windows
// candidates are relative paths checked for existence, Unix candidates are
// command names looked up in PATH.
func (r *Resolver) present(name string) (string, bool) {
	if r.env.Profile() == platform.Windows {
		return name, r.env.Exists(name)
	}
	return r.which(name)
}

func (r *Resolver) defaultExtractTool() string {
	if r.env.Profile() == platform.Windows {
		return windowsExtractTool
	}
	return Sasquatch
}

func (r *Resolver) v4BigEndianTool() string {
	if r.env.Profile() == platform.Windows {
		return windowsV4BETool
	}
	return SasquatchV4BE
}

func (r *Resolver) createTool() string {
	if r.env.Profile() == platform.Windows {
		return windowsCreateTool
	}
	return Mksquashfs
}
