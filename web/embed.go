// Package web embeds the static voice console and leads review pages.
package web

import "embed"

//go:embed static
var Static embed.FS
