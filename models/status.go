// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusResponse is returned by the status-check endpoint.
type StatusResponse struct {
	ServerVersion        string `json:"serverVersion"`
	MinimumClientVersion string `json:"minimumClientVersion"`
	UpdateRequired       bool   `json:"updateRequired"`
}
