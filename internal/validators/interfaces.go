// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound requests before the service
// layer acts on them.
//
// A [Validator] checks every known field of a request, or only the fields
// named in the call. It never consults storage: rules that depend on stored
// state (revisions, data versions, ownership) stay in the services.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
