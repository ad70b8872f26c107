// Package config loads brickyard's user settings with viper.
// Precedence (highest to lowest): BRICKYARD_* env vars > config.yaml > defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "BRICKYARD"

// Config is the public configuration contract.
type Config interface {
	Settings() Settings
	SettingsFile() string
}

type configImpl struct {
	settings     Settings
	settingsFile string
}

func (c *configImpl) Settings() Settings   { return c.settings }
func (c *configImpl) SettingsFile() string { return c.settingsFile }

// InvalidSettingsError reports settings that failed validation.
type InvalidSettingsError struct {
	File string
	Err  error
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid settings in %s: %v", e.File, e.Err)
}

func (e *InvalidSettingsError) Unwrap() error { return e.Err }

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeysFromSchema(v)
	SetDefaults(v)
	return v
}

// bindEnvKeysFromSchema binds every leaf key of Settings to its BRICKYARD_*
// variable. viper's AutomaticEnv alone does not make Unmarshal see keys that
// have no default and no file entry.
func bindEnvKeysFromSchema(v *viper.Viper) {
	replacer := strings.NewReplacer(".", "_")
	for _, key := range collectLeafPaths(reflect.TypeOf(Settings{}), "") {
		envVar := envPrefix + "_" + strings.ToUpper(replacer.Replace(key))
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("config: BindEnv(%q, %q) failed: %v", key, envVar, err))
		}
	}
}

// collectLeafPaths returns the dotted mapstructure paths of all leaf fields.
func collectLeafPaths(t reflect.Type, prefix string) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var paths []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		fullPath := tag
		if prefix != "" {
			fullPath = prefix + "." + tag
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft != reflect.TypeOf(time.Duration(0)) {
			paths = append(paths, collectLeafPaths(ft, fullPath)...)
			continue
		}
		paths = append(paths, fullPath)
	}
	return paths
}

// NewConfig loads settings from the default settings file. A missing file is
// not an error.
func NewConfig() (Config, error) {
	return Load(SettingsFilePath())
}

// Load reads settings from path, applies env overrides and validates them.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return decode(v, path)
}

// ReadFromString builds a Config from YAML content. Used by tests.
func ReadFromString(content string) (Config, error) {
	v := newViper()
	if err := v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return decode(v, "<string>")
}

func decode(v *viper.Viper, path string) (Config, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := Validate(s); err != nil {
		return nil, &InvalidSettingsError{File: path, Err: err}
	}
	return &configImpl{settings: s, settingsFile: path}, nil
}

var validate = validator.New()

// Validate checks settings against their validate tags.
func Validate(s Settings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
