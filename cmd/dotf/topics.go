package dotf

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicFiles embed.FS

func topicsFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
