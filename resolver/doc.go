// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package resolver locates the external utility that can extract or create a
// SquashFS image on a given platform.
//
// Resolution never fails. When nothing is found, the preferred tool name is returned
// with [Unconfirmed] confidence, so the failure surfaces when the caller spawns it.
// On Windows, where the bundled tools may live in several places, [Resolver.IsAvailable]
// confirms that a candidate can actually be invoked.
package resolver
