package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/cross-validation/runner"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither json nor yaml.
var ErrUnknownFormat = errors.New("unknown config format")

// Load decodes the config file into v, based on the file extension.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config from %s: %w", path, err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("'%s' for %s: %w", ext, path, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("could not unmarshal the config from %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("loaded config")
	return nil
}

// MustLoad loads the config file into v and panics if it fails.
func MustLoad(path string, v interface{}) {
	if err := Load(path, v); err != nil {
		panic(err.Error())
	}
}

// Options loads the runner fold options from the given file.
func Options(path string) (runner.Options, error) {
	var opts runner.Options
	if err := Load(path, &opts); err != nil {
		return runner.Options{}, err
	}
	if opts.Folds < 0 || opts.Percentage < 0 || opts.Percentage > 1 {
		return runner.Options{}, fmt.Errorf("invalid fold options %+v in %s", opts, path)
	}
	return opts, nil
}
