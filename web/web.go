// Package web embeds the form pages served by the router.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
