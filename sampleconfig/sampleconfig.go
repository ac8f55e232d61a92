// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	_ "embed"
)

// sampleAvalanchedConf is a string containing the commented example config
// for avalanched.
//
//go:embed sample-avalanched.conf
var sampleAvalanchedConf string

// sampleAvalanchectlConf is a string containing the commented example
// config for avalanchectl.
//
//go:embed sample-avalanchectl.conf
var sampleAvalanchectlConf string

// Avalanched returns a string containing the commented example config for
// avalanched.
func Avalanched() string {
	return sampleAvalanchedConf
}

// Avalanchectl returns a string containing the commented example config for
// avalanchectl.
func Avalanchectl() string {
	return sampleAvalanchectlConf
}
