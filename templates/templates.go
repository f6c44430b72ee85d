package templates

import "embed"

// FS holds the HTML templates rendered by the catalog service
//
//go:embed *.html
var FS embed.FS
