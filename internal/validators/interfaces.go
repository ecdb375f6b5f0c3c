// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the cinetrack API: account
// credentials, list entries and ratings.
//
// A Validator is injected into the services, which call Validate with the
// value to check and, optionally, the names of the fields to restrict the
// check to. Every rule violation is reported as one of the sentinel errors
// of this package so callers can match them with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
