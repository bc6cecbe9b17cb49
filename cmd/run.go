// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	sqfstool "github.com/fwscan/go-sqfstool"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// CLI are the cli parameters for the sqfstool binary
type CLI struct {
	MaxInputSize int64            `optional:"" default:"1073741824" help:"Maximum input size that is classified (in bytes). (disable check: -1)"`
	Placeholder  string           `optional:"" default:"%e" help:"Token that stands in for the input file in extractor arguments."`
	Probe        string           `optional:"" enum:"auto,always,never" default:"auto" help:"When to check that a resolved tool can be invoked (auto: windows only)."`
	ProbeTimeout time.Duration    `optional:"" default:"5s" help:"Maximum time a single tool probe may take. (disable check: 0)"`
	Telemetry    bool             `short:"T" optional:"" default:"false" help:"Print telemetry data to log after resolution."`
	Timeout      time.Duration    `optional:"" default:"60s" help:"Maximum time the command should take. (disable check: 0)"`
	Verbose      bool             `short:"v" optional:"" help:"Verbose logging."`
	Version      kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`

	Resolve  ResolveCmd  `cmd:"" help:"Describe how to extract a squashfs image on this host."`
	Create   CreateCmd   `cmd:"" help:"Describe how to create a squashfs image on this host."`
	Classify ClassifyCmd `cmd:"" help:"Check whether a squashfs image looks LZMA compressed."`
}

// globals are handed to every command
type globals struct {
	ctx   context.Context
	cfg   *sqfstool.Config
	out   io.Writer
	stdin io.Reader
}

// ResolveCmd prints extractor descriptors.
type ResolveCmd struct {
	Variant string `short:"t" enum:"default,le,be,v4be" default:"default" help:"Extraction variant (default, le, be, v4be)."`
	All     bool   `short:"a" help:"Resolve every variant."`
}

// Run resolves the requested variants and prints the descriptors as JSON.
func (c *ResolveCmd) Run(g *globals) error {
	if !c.All {
		v, err := sqfstool.ParseVariant(c.Variant)
		if err != nil {
			return errors.Wrap(err, "invalid variant")
		}
		return writeJSON(g.out, sqfstool.NewExtractor(g.ctx, v, g.cfg))
	}

	// variants share no state, resolve them side by side
	descriptors := make([]*sqfstool.Descriptor, len(sqfstool.Variants))
	eg, ctx := errgroup.WithContext(g.ctx)
	for i, v := range sqfstool.Variants {
		i, v := i, v
		eg.Go(func() error {
			descriptors[i] = sqfstool.NewExtractor(ctx, v, g.cfg)
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "resolving variants failed")
	}
	return writeJSON(g.out, descriptors)
}

// CreateCmd prints a creator descriptor.
type CreateCmd struct {
	Source string `arg:"" name:"source" help:"Directory to pack."`
	Output string `arg:"" name:"output" help:"Image file to create."`
}

// Run resolves the packer and prints the descriptor as JSON.
func (c *CreateCmd) Run(g *globals) error {
	return writeJSON(g.out, sqfstool.MksquashfsCreator(g.ctx, c.Source, c.Output, g.cfg))
}

// ClassifyCmd prints the lzma verdict of an image.
type ClassifyCmd struct {
	Image  string `arg:"" name:"image" help:"Path to image. (\"-\" for STDIN)"`
	Verify bool   `optional:"" help:"Locate the first LZMA stream the decoder accepts."`
}

// classification is the output of [ClassifyCmd].
type classification struct {
	Image        string           `json:"image"`
	Verdict      sqfstool.Verdict `json:"verdict"`
	LZMA         bool             `json:"lzma"`
	StreamOffset *int             `json:"stream_offset,omitempty"`
}

// Run classifies the image and prints the result as JSON.
func (c *ClassifyCmd) Run(g *globals) error {
	data, err := c.read(g)
	if err != nil {
		return err
	}

	res := classification{Image: c.Image, Verdict: sqfstool.Classify(data)}
	if c.Image == "-" {
		res.LZMA = res.Verdict.LZMA
	} else {
		res.LZMA = sqfstool.ClassifyFile(c.Image, g.cfg)
	}

	if c.Verify {
		if off, ok := sqfstool.VerifyLZMAStream(data); ok {
			res.StreamOffset = &off
		}
	}
	return writeJSON(g.out, res)
}

// read returns the complete image, bounded by the configured input size.
func (c *ClassifyCmd) read(g *globals) ([]byte, error) {
	if c.Image == "-" {
		r := io.Reader(bufio.NewReader(g.stdin))
		if limit := g.cfg.MaxInputSize(); limit != -1 {
			r = io.LimitReader(r, limit+1)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin failed")
		}
		if err := g.cfg.CheckInputSize(int64(len(data))); err != nil {
			return nil, errors.Wrap(err, "reading stdin failed")
		}
		return data, nil
	}

	stat, err := os.Stat(c.Image)
	if err != nil {
		return nil, errors.Wrap(err, "opening image failed")
	}
	if err := g.cfg.CheckInputSize(stat.Size()); err != nil {
		return nil, errors.Wrapf(err, "image %s", c.Image)
	}
	data, err := os.ReadFile(c.Image)
	if err != nil {
		return nil, errors.Wrap(err, "reading image failed")
	}
	return data, nil
}

// writeJSON prints v indented to out
func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return errors.Wrap(enc.Encode(v), "writing output failed")
}

// Run the entrypoint into sqfstool as a cli tool
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("sqfstool"),
		kong.Description("Find and describe the tools that extract or create SquashFS images"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *sqfstool.TelemetryData) {
		if cli.Telemetry {
			logger.Info("resolution finished", "telemetry", td)
		}
	}

	mode, err := sqfstool.ParseProbeMode(cli.Probe)
	kctx.FatalIfErrorf(err)

	// process cli params
	config := sqfstool.NewConfig(
		sqfstool.WithLogger(logger),
		sqfstool.WithMaxInputSize(cli.MaxInputSize),
		sqfstool.WithPlaceholder(cli.Placeholder),
		sqfstool.WithProbeMode(mode),
		sqfstool.WithProbeTimeout(cli.ProbeTimeout),
		sqfstool.WithTelemetryHook(telemetryToLog),
	)

	if cli.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cli.Timeout)
		defer cancel()
	}

	g := &globals{ctx: ctx, cfg: config, out: os.Stdout, stdin: os.Stdin}
	if err := kctx.Run(g); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "err", err)
		os.Exit(-1)
	}
}
