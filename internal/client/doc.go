// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the processing adapter, the in-memory batch, the submit services,
// the identity session and the terminal UI into a single process lifecycle,
// and offers a headless submit for scripted use.
package client
