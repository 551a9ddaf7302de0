// Package assets embeds the default configuration and level catalogue.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed configs
var configFS embed.FS

// Configs returns the embedded configs directory as its own root.
func Configs() fs.FS {
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		panic(err)
	}
	return sub
}
