//go:build tools

// Package tools pins code-generation dependencies so `go generate` keeps
// working from a clean checkout.
package tools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
