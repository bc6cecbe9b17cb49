// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"context"
	"fmt"

	"github.com/fwscan/go-sqfstool/resolver"
)

// Variant is one of the extraction flavours a caller can ask for.
type Variant int

const (
	// VariantDefault extracts an image and lets the tool detect the byte order.
	VariantDefault Variant = iota

	// VariantLittleEndian extracts a little endian image.
	VariantLittleEndian

	// VariantBigEndian extracts a big endian image.
	VariantBigEndian

	// VariantV4BigEndian extracts a big endian SquashFS 4.x image.
	VariantV4BigEndian
)

// Variants lists every extraction variant.
var Variants = []Variant{VariantDefault, VariantLittleEndian, VariantBigEndian, VariantV4BigEndian}

var variantNames = map[Variant]string{
	VariantDefault:      "default",
	VariantLittleEndian: "le",
	VariantBigEndian:    "be",
	VariantV4BigEndian:  "v4be",
}

// String returns the name of the variant.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant returns the variant with the given name.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if v.String() == s {
			return v, nil
		}
	}
	return VariantDefault, fmt.Errorf("unknown variant %q", s)
}

// Parameters returns the format parameters of the variant.
func (v Variant) Parameters() FormatParameters {
	switch v {
	case VariantLittleEndian:
		return FormatParameters{LittleEndian: true}
	case VariantBigEndian:
		return FormatParameters{BigEndian: true}
	case VariantV4BigEndian:
		return FormatParameters{BigEndian: true, V4: true}
	}
	return FormatParameters{}
}

// Operation returns the resolver operation of the variant.
func (v Variant) Operation() resolver.Operation {
	switch v {
	case VariantLittleEndian:
		return resolver.OperationExtractLittleEndian
	case VariantBigEndian:
		return resolver.OperationExtractBigEndian
	case VariantV4BigEndian:
		return resolver.OperationExtractV4BigEndian
	}
	return resolver.OperationExtract
}

// NewExtractor describes how to run the best available utility to extract a
// SquashFS image of the given variant. It never fails: if no tool can be found
// the descriptor names the preferred tool with [resolver.Unconfirmed]
// confidence, so the failure surfaces when the tool is spawned.
//
// If the probe policy of cfg applies to the host, the resolved tool is probed
// first. A tool that cannot be invoked is replaced by 7-Zip when 7-Zip is
// installed.
func NewExtractor(ctx context.Context, v Variant, cfg *Config) *Descriptor {
	if cfg == nil {
		cfg = NewConfig()
	}

	op := v.Operation()
	td := &TelemetryData{Operation: op.String()}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureResolutionDuration(td, now())

	r := cfg.resolver()
	profile := cfg.Environment().Profile()
	res := r.Resolve(op)

	if cfg.shouldProbe(profile) {
		td.Probed = true
		if !r.IsAvailable(ctx, res.Tool.Name) {
			td.ProbeFailed = true
			res = fallback(r, res, cfg.Logger())
			td.FellBack = res.Confidence == resolver.Fallback
		}
	}

	d := &Descriptor{
		Utility:     External(res.Tool.Name),
		Extension:   fileExtensionSquashfs,
		Arguments:   Arguments(profile, res.Tool.Kind, v.Parameters(), cfg.Placeholder()),
		ExitCodes:   exitCodes(res.Tool.Kind),
		Placeholder: cfg.Placeholder(),
		Operation:   op,
		Tool:        res.Tool,
		Confidence:  res.Confidence,
	}
	fillTelemetry(td, d)
	cfg.Logger().Debug("built squashfs extractor", "variant", v, "tool", d.Utility.Command, "confidence", d.Confidence)
	return d
}

// fallback replaces a tool that failed the probe with 7-Zip. Without 7-Zip the
// tool is kept and downgraded to unconfirmed.
func fallback(r *resolver.Resolver, res resolver.Result, log logger) resolver.Result {
	if res.Tool.Kind != resolver.KindArchiver {
		if name, ok := r.FindArchiver(); ok {
			log.Info("squashfs tool cannot be invoked, using 7-Zip instead", "tool", res.Tool.Name, "fallback", name)
			return resolver.Result{
				Operation:  res.Operation,
				Tool:       resolver.Tool{Name: name, Path: name, Kind: resolver.KindArchiver},
				Confidence: resolver.Fallback,
			}
		}
	}
	log.Warn("squashfs tool cannot be invoked, make sure it is installed next to the executable or in PATH", "tool", res.Tool.Name)
	res.Confidence = resolver.Unconfirmed
	return res
}

// SquashfsExtractor describes how to extract a SquashFS image of any byte order.
func SquashfsExtractor(ctx context.Context, cfg *Config) *Descriptor {
	return NewExtractor(ctx, VariantDefault, cfg)
}

// SquashfsLEExtractor describes how to extract a little endian SquashFS image.
func SquashfsLEExtractor(ctx context.Context, cfg *Config) *Descriptor {
	return NewExtractor(ctx, VariantLittleEndian, cfg)
}

// SquashfsBEExtractor describes how to extract a big endian SquashFS image.
func SquashfsBEExtractor(ctx context.Context, cfg *Config) *Descriptor {
	return NewExtractor(ctx, VariantBigEndian, cfg)
}

// SquashfsV4BEExtractor describes how to extract a big endian SquashFS 4.x image.
func SquashfsV4BEExtractor(ctx context.Context, cfg *Config) *Descriptor {
	return NewExtractor(ctx, VariantV4BigEndian, cfg)
}

// MksquashfsCreator describes how to pack sourceDir into outputFile. The
// arguments are concrete paths and the packer is never probed.
func MksquashfsCreator(ctx context.Context, sourceDir, outputFile string, cfg *Config) *Descriptor {
	if cfg == nil {
		cfg = NewConfig()
	}

	td := &TelemetryData{Operation: resolver.OperationCreate.String()}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureResolutionDuration(td, now())

	res := cfg.resolver().Resolve(resolver.OperationCreate)
	d := &Descriptor{
		Utility:    External(res.Tool.Name),
		Extension:  fileExtensionSquashfs,
		Arguments:  []string{sourceDir, outputFile},
		ExitCodes:  exitCodes(res.Tool.Kind),
		Operation:  res.Operation,
		Tool:       res.Tool,
		Confidence: res.Confidence,
	}
	fillTelemetry(td, d)
	return d
}

// fillTelemetry copies the outcome of d into td.
func fillTelemetry(td *TelemetryData, d *Descriptor) {
	td.Tool = d.Utility.Command
	td.ToolKind = d.Tool.Kind.String()
	td.Confidence = d.Confidence.String()
}
