// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Prompter reads interactive input. ReadPassword must not echo.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

// AppFactory builds the application for a command. configPath is the value
// of the --config flag. The returned function releases local resources.
type AppFactory func(ctx context.Context, configPath string, out io.Writer) (*App, func(), error)
