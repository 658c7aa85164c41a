// Command schema writes the JSON schema of generation configs or presets.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/pixil98/go-rando/internal/config"
)

func main() {
	var outPath string
	var preset bool
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema (default stdout)")
	flag.BoolVar(&preset, "preset", false, "describe a preset asset spec instead of a bare config")
	flag.Parse()

	schema := buildSchema(preset)

	var err error
	if outPath == "" {
		err = encodeSchema(os.Stdout, schema)
	} else {
		err = writeSchema(outPath, schema)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema(preset bool) *jsonschema.Schema {
	reflector := jsonschema.Reflector{}

	if preset {
		schema := reflector.Reflect(new(config.Preset))
		schema.Title = "Randomizer Preset"
		schema.Description = "A named generation config stored as the spec of a preset asset"
		return schema
	}

	schema := reflector.Reflect(new(config.Config))
	schema.Title = "Randomizer Config"
	schema.Description = "Settings for a single generation request"
	return schema
}

func encodeSchema(w io.Writer, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	f, err := os.Create(outPath + ".tmp")
	if err != nil {
		return fmt.Errorf("create temp schema: %w", err)
	}
	if err := encodeSchema(f, schema); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp schema: %w", err)
	}

	if err := os.Rename(outPath+".tmp", outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
