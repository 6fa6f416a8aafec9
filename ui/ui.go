// Package ui holds the embedded HTML views. Embedding them into the
// binary means the server has no runtime dependency on the working
// directory layout.
package ui

import "embed"

//go:embed "html"
var Files embed.FS
