// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

// Package client implements the offline-first client application runtime.
//
// It wires the local store, the backend adapter, the connectivity monitor and
// the sync coordinator into a single process lifecycle.
package client
