// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the syncstatus command-line runtime.
//
// It parses commands and flags, resolves configuration, builds a run-scoped
// logger and the service layer, and renders results to the terminal.
package client
