// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the eat-around command-line client.
//
// Every API operation is exposed as a cobra subcommand that calls the REST
// API through [adapter.APIClient] and prints the JSON result.
package client
