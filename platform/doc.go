// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package platform abstracts the host facts a tool lookup depends on: environment
// variables, file existence, the executable bit, the path of the running binary and
// the ability to spawn a short-lived child process.
//
// [Os] talks to the real host. [Memory] is an in-memory implementation that can pretend
// to be either a Windows or a Unix-like host, which makes lookups deterministic in tests.
package platform
