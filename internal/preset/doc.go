// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package preset holds the fixed menu of test-run configurations. Each preset
// maps a single-digit key to one shell command string for the external test
// tool plus the human-readable description shown before it runs.
package preset
