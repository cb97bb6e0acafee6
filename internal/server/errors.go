// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("neither an HTTP nor a gRPC address is configured")

	// ErrHTTPListen and ErrGRPCListen wrap a failure to bind the listener,
	// typically an address already in use.
	ErrHTTPListen = errors.New("HTTP listen")
	ErrGRPCListen = errors.New("gRPC listen")
)
