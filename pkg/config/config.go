// Package config loads the optional .racketlisprc.toml settings file
// that tunes the REPL and HTTP server. Nothing in the interpreter
// core consults this package; it is purely driver-layer plumbing.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full set of settings a .racketlisprc.toml may
// override. Every field has a built-in default, so a missing file (or
// a file missing some fields) is never an error.
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Color  bool   `toml:"color"`
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	JWTSecret string `toml:"jwt_secret"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the settings used when no config file is present or
// a loaded file omits a section.
func Default() Config {
	return Config{
		REPL:   REPLConfig{Prompt: "racket-lisp> ", Color: true},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path and decodes it over Default(), so any field left
// unset in the file keeps its default value. A missing file is not an
// error: Load returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
