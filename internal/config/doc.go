// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic project settings and the
// interface a file loader implements to produce them. The concrete HCL
// implementation lives in the `hcl` package.
package config
