// Package templates holds the panel's HTML templates.
package templates

import "embed"

// FS contains the layout and every page template
//
//go:embed *.html
var FS embed.FS
