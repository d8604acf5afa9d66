package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Overlay serves files from Dir on disk when a copy exists there and from
// the embedded FS otherwise, so content edits show up without a rebuild.
type Overlay struct {
	Dir string
	FS  fs.FS
}

// Prefabs is the overlay for entity specs and dialogue data.
var Prefabs = Overlay{Dir: "prefabs", FS: PrefabsFS}

// Read returns name, which may carry the overlay directory as a prefix.
func (o Overlay) Read(name string) ([]byte, error) {
	clean := o.clean(name)
	if o.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(o.Dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	if o.FS == nil {
		return nil, fs.ErrNotExist
	}
	return fs.ReadFile(o.FS, clean)
}

func (o Overlay) clean(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	if o.Dir != "" {
		s = strings.TrimPrefix(s, filepath.ToSlash(o.Dir)+"/")
	}
	return strings.TrimPrefix(s, "./")
}

// Load reads a prefab or dialogue file through the Prefabs overlay.
func Load(name string) ([]byte, error) {
	return Prefabs.Read(name)
}
