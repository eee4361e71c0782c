// Package worldspec reads world specification files
package worldspec

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// Format is the encoding of a specification file
type Format string

const (
	// FormatText is the line oriented format
	FormatText Format = "text"
	// FormatYAML is the YAML format
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension; anything that is not
// .yaml or .yml is read as text
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Client loads specifications from files
type Client interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput names the file to load
type LoadInput struct {
	Path string
}

// LoadOutput holds the parsed specification
type LoadOutput struct {
	Spec   *entities.WorldSpec
	Format Format
}

// Config holds the dependencies for the client
type Config struct {
	// FS is read instead of the operating system when set
	FS fs.FS
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	return nil
}

type client struct {
	fsys fs.FS
}

// New creates a specification client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{fsys: cfg.FS}, nil
}

// Load opens and parses a specification file. Parsing checks the format only;
// the world validates the contents when it is built.
func (c *client) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}

	f, err := c.open(input.Path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to open %s", input.Path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close specification file",
				"path", input.Path,
				"error", closeErr,
			)
		}
	}()

	format := FormatFor(input.Path)

	var spec *entities.WorldSpec
	switch format {
	case FormatYAML:
		spec, err = ParseYAML(f)
	default:
		spec, err = Parse(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", input.Path)
	}

	slog.Info("Loaded world specification",
		"path", input.Path,
		"format", string(format),
		"world", spec.Name,
		"rooms", len(spec.Rooms),
		"items", len(spec.Items),
	)

	return &LoadOutput{Spec: spec, Format: format}, nil
}

func (c *client) open(path string) (io.ReadCloser, error) {
	if c.fsys != nil {
		return c.fsys.Open(path)
	}
	return os.Open(path)
}
