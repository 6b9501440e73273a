// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// Shutdown limits how long telemetry may take to flush on exit.
const Shutdown = 5 * time.Second

// APIRequest is the default per-request bound for REST calls. Zero means
// requests wait for the caller's context only.
const APIRequest time.Duration = 0
