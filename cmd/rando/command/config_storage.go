package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/storage"
)

type PresetsConfig struct {
	Path string `json:"path"`
	// List prints the stored presets at startup.
	List bool `json:"list"`
}

func (c *PresetsConfig) Validate() error {
	if c.Path == "" {
		if c.List {
			return fmt.Errorf("presets.list needs presets.path")
		}
		return nil
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("presets: invalid path %q: %w", c.Path, err)
	}
	return nil
}

// BuildFileStore loads the preset store, or returns nil when no path is set.
func (c *PresetsConfig) BuildFileStore() (*storage.FileStore[*config.Preset], error) {
	if c.Path == "" {
		return nil, nil
	}
	return storage.NewFileStore[*config.Preset](c.Path)
}
