// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath is read from the working directory when --config is not given.
const defaultConfigPath = ".catcheck.yaml"

// Config is the on-disk CLI configuration. Flags override it.
type Config struct {
	Format      string `yaml:"format" validate:"oneof=text json"`
	Strict      bool   `yaml:"strict"`
	Suggestions bool   `yaml:"suggestions"`
	LogLevel    string `yaml:"logLevel" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

func defaultConfig() Config {
	return Config{
		Format:      "text",
		Suggestions: true,
		LogLevel:    "warn",
	}
}

var configValidator = validator.New()

// loadConfig reads path over the defaults. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return cfg, nil
	case err != nil:
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	err := configValidator.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
	}

	return errors.New(strings.Join(msgs, "; "))
}
