package uikit

import (
	"io/fs"

	"github.com/goliatone/go-uikit/pkg/ui/behavior"
)

// RuntimeAssetsFS exposes the component scripts as <name>.js files so
// applications can serve them instead of inlining them.
//
// Typical mount:
//
//	mux.Handle("/assets/uikit/",
//	  http.StripPrefix("/assets/uikit/",
//	    http.FileServerFS(uikit.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return behavior.Assets()
}
