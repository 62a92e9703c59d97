// Package embedded carries the catalog data compiled into the binary.
package embedded

import (
	"embed"
)

// FS embeds the catalog data file and the bibliography at build time.
//
//go:embed catalog/*
var FS embed.FS
