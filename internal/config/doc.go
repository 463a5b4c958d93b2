// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

// Package config provides configuration loading, merging, and validation
// facilities for the givelink client.
//
// Configuration is assembled from multiple sources; for each field the first
// non-zero value wins, checked in the following order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which maps the merged
// [StructuredConfig] onto the client view, applies defaults, and validates
// the result.
package config
