// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package sqfstool builds invocation descriptors for the external tools that
// extract or create SquashFS images found inside firmware blobs.
//
// A [Descriptor] names the utility to spawn, the ordered arguments with a
// placeholder standing in for the input file and the exit codes that count as
// success. Descriptors are built by [NewExtractor] and the per variant helpers,
// which ask the [resolver] package for the best tool available on the host and,
// where the platform makes it necessary, confirm that the tool can actually be
// invoked before falling back to 7-Zip.
//
// [Classify] and [ClassifyFile] are independent of the descriptor path. They
// inspect raw image bytes and return a best-effort LZMA compression verdict.
//
// Configuration is done using the [Config], which is a configuration struct that
// can be used to set the logger, the platform environment, the probe policy and
// the telemetry hook. [TelemetryData] is captured for every descriptor built.
package sqfstool
