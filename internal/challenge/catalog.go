package challenge

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Catalog is the read-only collection of challenge definitions,
// loaded once at startup.
type Catalog struct {
	byID  map[int]*Challenge
	order []int
}

// LoadDir loads all YAML challenge files from a directory. When dir is
// empty or does not exist, the embedded default set is used instead.
func LoadDir(dir string) (*Catalog, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return loadFS(os.DirFS(dir), ".")
		}
		slog.Warn("challenges directory not found, using embedded defaults", "dir", dir)
	}
	return loadFS(defaultFS, "defaults")
}

// LoadEmbedded loads the embedded default challenge set.
func LoadEmbedded() (*Catalog, error) {
	return loadFS(defaultFS, "defaults")
}

func loadFS(fsys fs.FS, root string) (*Catalog, error) {
	c := &Catalog{byID: make(map[int]*Challenge)}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := fs.Glob(fsys, path.Join(root, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read challenge file %s: %w", file, err)
		}

		var ch Challenge
		if err := yaml.Unmarshal(data, &ch); err != nil {
			return nil, fmt.Errorf("parse challenge file %s: %w", file, err)
		}
		if ch.ID <= 0 {
			return nil, fmt.Errorf("challenge file %s: id must be a positive integer", file)
		}
		if ch.Title.For("ja") == "" {
			return nil, fmt.Errorf("challenge file %s: title is required", file)
		}
		if _, dup := c.byID[ch.ID]; dup {
			return nil, fmt.Errorf("challenge file %s: duplicate id %d", file, ch.ID)
		}

		c.byID[ch.ID] = &ch
		c.order = append(c.order, ch.ID)
	}

	if len(c.byID) == 0 {
		return nil, fmt.Errorf("no challenge definitions found")
	}

	sort.Ints(c.order)
	slog.Info("challenge catalog loaded", "count", len(c.byID))
	return c, nil
}

// Get returns the challenge with the given id, or ErrNotFound.
func (c *Catalog) Get(id int) (*Challenge, error) {
	ch, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ch, nil
}

// All returns every challenge in ascending id order.
func (c *Catalog) All() []*Challenge {
	out := make([]*Challenge, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of challenges in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}
