package turkishstemmer

import (
	"embed"
	"io/fs"

	"github.com/skroutz/turkish-stemmer/pkg/adapters/file"
	"github.com/skroutz/turkish-stemmer/pkg/ports"
)

//go:embed data/*.yaml
var defaultData embed.FS

// DefaultLoader returns a loader over the embedded default tables.
func DefaultLoader() ports.TableLoader {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		// The embedded tree always contains data/.
		panic(err)
	}
	return file.New(sub)
}
