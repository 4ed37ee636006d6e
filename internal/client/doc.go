// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the screen state machines, the terminal UI and the background
// token refresh into a single process lifecycle.
package client
