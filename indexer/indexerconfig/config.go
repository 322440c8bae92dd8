// Package indexerconfig holds the indexer's runtime configuration, the
// counterpart to mive's miveconfig.Config trimmed to what a standalone
// chain-head database needs: where it lives on disk and how large its
// open-file/cache budget is.
package indexerconfig

import (
	"bufio"
	"errors"
	"os"
	"reflect"

	"github.com/naoina/toml"
)

// Config configures an indexer.Indexer.
type Config struct {
	// DataDir is the directory the chain-head database is stored under.
	DataDir string

	// DatabaseCache is the LevelDB block cache size, in megabytes.
	DatabaseCache int

	// DatabaseHandles is the number of open file descriptors LevelDB may
	// use.
	DatabaseHandles int
}

// DefaultConfig mirrors mive's conservative defaults for a small,
// single-purpose database.
var DefaultConfig = Config{
	DatabaseCache:   16,
	DatabaseHandles: 64,
}

// tomlSettings mirrors mive's cmd/mive/config.go: TOML keys use the same
// names as the Go struct fields, with no case-folding or renaming.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		return errors.New("field '" + field + "' is not defined in " + rt.String())
	},
}

// LoadConfig reads a TOML file into a copy of DefaultConfig, for a host
// process that wants to configure an Indexer from a config file rather
// than building an indexerconfig.Config by hand.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig

	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cfg)
	if lerr, ok := err.(*toml.LineError); ok {
		return Config{}, errors.New(path + ", " + lerr.Error())
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
