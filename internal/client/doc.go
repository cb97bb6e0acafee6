// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line vault client.
//
// [App] runs one operation per invocation: it signs in with the master
// password, performs the operation against the client services and signs the
// device out again. [NewRootCommand] exposes the operations as cobra
// commands.
package client
