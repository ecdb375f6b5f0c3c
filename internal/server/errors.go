// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no HTTP handler or
	// listen address is configured.
	errNoServersAreCreated = errors.New("server: no HTTP handler or address configured")
	errNoServersToRun      = errors.New("server: nothing to run")
)
