package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Log      LogConfig       `json:"log"`
	Presets  PresetsConfig   `json:"presets"`
	Requests []RequestConfig `json:"requests"`
	Output   OutputConfig    `json:"output"`
	Nats     *NatsConfig     `json:"nats,omitempty"`
	Redis    *RedisConfig    `json:"redis,omitempty"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Log.Validate())
	el.Add(c.Presets.Validate())
	el.Add(c.Output.Validate())

	if len(c.Requests) == 0 && !c.Presets.List {
		el.Add(fmt.Errorf("at least one request is required"))
	}
	for i, r := range c.Requests {
		if err := r.Validate(); err != nil {
			el.Add(fmt.Errorf("request %d: %w", i, err))
		}
		if r.Preset.IsSet() && c.Presets.Path == "" {
			el.Add(fmt.Errorf("request %d: preset %q needs presets.path", i, r.Preset.Key()))
		}
	}

	if c.Nats != nil {
		el.Add(c.Nats.Validate())
	}
	if c.Redis != nil {
		el.Add(c.Redis.Validate())
	}

	return el.Err()
}

type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

func (c *LogConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.Level)); err != nil {
			el.Add(fmt.Errorf("log.level: %w", err))
		}
	}

	switch c.Format {
	case "", "text", "json":
	default:
		el.Add(fmt.Errorf("log.format must be text or json, got %q", c.Format))
	}

	return el.Err()
}

// Logger builds the process logger and installs it as the slog default.
func (c *LogConfig) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{}
	if c.Level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.Level)); err == nil {
			opts.Level = l
		}
	}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

type OutputConfig struct {
	Dir   string `json:"dir"`
	Width int    `json:"width"`
}

func (c *OutputConfig) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("output.width must not be negative")
	}
	return nil
}
