// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the CineTrack command-line client.
//
// A [Session] keeps the access and refresh tokens in a local SQLite store
// and tracks whether the user is logged in. [App] maps command-line
// arguments to session calls and prints the results as JSON.
package client
