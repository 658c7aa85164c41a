package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/generator"
	"github.com/pixil98/go-rando/internal/storage"
)

// RequestConfig is one generation to run. It names a stored preset or
// carries an inline config, and may pin the seed.
type RequestConfig struct {
	Name   string                                  `json:"name"`
	Preset storage.SmartIdentifier[*config.Preset] `json:"preset,omitempty"`
	Config *config.Config                          `json:"config,omitempty"`
	Seed   int64                                   `json:"seed,omitempty"`
}

func (r *RequestConfig) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}

	switch {
	case r.Preset.IsSet() && r.Config != nil:
		el.Add(fmt.Errorf("preset and config are mutually exclusive"))
	case !r.Preset.IsSet() && r.Config == nil:
		el.Add(fmt.Errorf("one of preset or config is required"))
	case r.Config != nil:
		if err := r.Config.Validate(); err != nil {
			el.Add(fmt.Errorf("config: %w", err))
		}
	}

	return el.Err()
}

// BuildRequest resolves the preset, if any, and applies the seed override.
// The stored preset is never modified.
func (r *RequestConfig) BuildRequest(presets storage.Storer[*config.Preset]) (generator.Request, error) {
	var cfg config.Config
	if r.Preset.IsSet() {
		if presets == nil {
			return generator.Request{}, fmt.Errorf("request %s: no preset store configured", r.Name)
		}
		if err := r.Preset.Resolve(presets); err != nil {
			return generator.Request{}, fmt.Errorf("request %s: %w", r.Name, err)
		}
		cfg = r.Preset.Get().Config
	} else {
		cfg = *r.Config
	}

	if r.Seed != 0 {
		cfg.Seed = r.Seed
	}

	return generator.Request{Name: r.Name, Config: &cfg}, nil
}
