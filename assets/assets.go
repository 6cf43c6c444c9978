package assets

import "embed"

//go:embed all:layout
var FS embed.FS

// LayoutPath is the page layout map inside FS.
const LayoutPath = "layout/startpage.tmx"
