package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/generator"
	"github.com/pixil98/go-rando/internal/messaging"
	"github.com/pixil98/go-rando/internal/spoiler"
	"github.com/pixil98/go-rando/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(v interface{}) (service.WorkerList, error) {
	cfg, ok := v.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	logger := cfg.Log.Logger()

	presets, err := cfg.Presets.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating preset store: %w", err)
	}

	if cfg.Presets.List {
		if _, err := storage.NewCatalog[*config.Preset](presets).WriteTo(os.Stdout); err != nil {
			return nil, fmt.Errorf("listing presets: %w", err)
		}
	}

	requests, err := cfg.buildRequests(presets)
	if err != nil {
		return nil, err
	}

	workers := service.WorkerList{}
	opts := []generator.WorkerOpt{generator.WithWorkerLogger(logger)}

	if cfg.Output.Dir != "" {
		var rOpts []spoiler.RendererOpt
		if cfg.Output.Width > 0 {
			rOpts = append(rOpts, spoiler.WithWidth(cfg.Output.Width))
		}
		renderer, err := spoiler.New(rOpts...)
		if err != nil {
			return nil, fmt.Errorf("creating spoiler renderer: %w", err)
		}
		opts = append(opts, generator.WithOutputDir(cfg.Output.Dir), generator.WithRenderer(renderer))
	}

	if cfg.Nats != nil {
		server, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = server
		opts = append(opts, generator.WithPublisher(messaging.NewResultPublisher(server)))
	}

	if cfg.Redis != nil {
		a, err := cfg.Redis.buildArchive(logger)
		if err != nil {
			return nil, fmt.Errorf("creating archive: %w", err)
		}
		opts = append(opts, generator.WithArchiver(a))
	}

	if len(requests) > 0 {
		gen := generator.New(generator.WithLogger(logger))
		workers["generator"] = generator.NewWorker(gen, requests, opts...)
	}

	return workers, nil
}

func (c *Config) buildRequests(store *storage.FileStore[*config.Preset]) ([]generator.Request, error) {
	var presets storage.Storer[*config.Preset]
	if store != nil {
		presets = store
	}

	requests := make([]generator.Request, 0, len(c.Requests))
	for i := range c.Requests {
		req, err := c.Requests[i].BuildRequest(presets)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
