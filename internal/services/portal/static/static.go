// Package static embeds the portal stylesheet.
package static

import "embed"

// FS exposes portal static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
