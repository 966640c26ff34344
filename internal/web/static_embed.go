package web

import "embed"

//go:embed static/css/*.css
var staticFS embed.FS
