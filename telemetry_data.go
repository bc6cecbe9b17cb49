// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"context"
	"encoding/json"
	"time"
)

// now is a function point that returns time.Now to the caller.
var now = time.Now

// TelemetryData holds all telemetry data of a descriptor resolution.
type TelemetryData struct {
	// Confidence is how the tool was resolved
	Confidence string `json:"confidence"`

	// FellBack is true if 7-Zip replaced a tool that failed the probe
	FellBack bool `json:"fell_back"`

	// Operation is the requested operation
	Operation string `json:"operation"`

	// Probed is true if the tool was probed for invocability
	Probed bool `json:"probed"`

	// ProbeFailed is true if the probe rejected the tool
	ProbeFailed bool `json:"probe_failed"`

	// ResolutionDuration is the time it took to build the descriptor
	ResolutionDuration time.Duration `json:"resolution_duration"`

	// Tool is the utility the descriptor spawns
	Tool string `json:"tool"`

	// ToolKind is the family of the tool
	ToolKind string `json:"tool_kind"`
}

// String returns a string representation of [TelemetryData].
func (m TelemetryData) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface. The duration
// is rendered in a human readable form.
func (m TelemetryData) MarshalJSON() ([]byte, error) {
	type Alias TelemetryData
	return json.Marshal(&struct {
		ResolutionDuration string `json:"resolution_duration"`
		*Alias
	}{
		ResolutionDuration: m.ResolutionDuration.String(),
		Alias:              (*Alias)(&m),
	})
}

// TelemetryHook is a function type that performs operations on [TelemetryData]
// after a descriptor has been built which can be used to submit the [TelemetryData]
// to a telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// captureResolutionDuration captures the duration of the resolution
func captureResolutionDuration(td *TelemetryData, start time.Time) {
	td.ResolutionDuration = now().Sub(start)
}
