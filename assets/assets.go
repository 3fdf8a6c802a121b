// Package assets embeds the scenes shipped with the engine.
package assets

import (
	"embed"
	"io/fs"
)

// Sandbox is the scene the sandbox command runs by default.
const Sandbox = "sandbox.yaml"

var (
	//go:embed all:scenes
	assetFS embed.FS
)

// Scenes returns the embedded scene directory. Scene documents, animation
// sets and Tiled maps reference each other relative to its root.
func Scenes() fs.FS {
	sub, err := fs.Sub(assetFS, "scenes")
	if err != nil {
		panic(err)
	}
	return sub
}
