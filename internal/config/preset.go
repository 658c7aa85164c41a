package config

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Preset is a named configuration stored as an asset file.
type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Config      Config `json:"config" yaml:"config"`
}

// Validate satisfies storage.ValidatingSpec.
func (p *Preset) Validate() error {
	el := errors.NewErrorList()

	if p.Name == "" {
		el.Add(fmt.Errorf("preset name is required"))
	}

	if err := p.Config.Validate(); err != nil {
		el.Add(fmt.Errorf("config: %w", err))
	}

	return el.Err()
}

// Selector returns the label shown when listing presets.
func (p *Preset) Selector() string {
	return p.Name
}
