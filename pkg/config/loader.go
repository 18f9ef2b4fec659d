package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/filesystem"
	"github.com/arthur-debert/builder-doctor/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every environment override, e.g.
// BUILDER_DOCTOR_RULES__MAX_LINES=400 sets rules.max_lines
const EnvPrefix = "BUILDER_DOCTOR_"

// ProjectFiles are checked in order inside the project directory; the first
// one found is loaded
var ProjectFiles = []string{".builder-doctor.toml", ".builder-doctor.yaml", ".builder-doctor.yml"}

// UserFileName is the user config file inside $XDG_CONFIG_HOME/builder-doctor
const UserFileName = "config.toml"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Default returns the embedded defaults without looking at the project or environment
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	return cfg
}

// Load resolves the configuration for the project rooted at projectDir. The
// project file is read from fsys; the user file lives outside the project and
// is always read from the OS.
func Load(fsys afero.Fs, projectDir string) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, doctorerrors.Wrap(err, doctorerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config if it exists
	if path := userConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, doctorerrors.Wrapf(err, doctorerrors.ErrConfigParse,
					"failed to load user config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		}
	}

	// 3. Project config if it exists
	if path, parser := findProjectFile(fsys, projectDir); path != "" {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil, doctorerrors.Wrapf(err, doctorerrors.ErrFileRead,
				"failed to read project config %s", path)
		}
		if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
			return nil, doctorerrors.Wrapf(err, doctorerrors.ErrConfigParse,
				"failed to load project config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
	}

	// 4. Environment overrides
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, doctorerrors.Wrap(err, doctorerrors.ErrConfigLoad, "failed to load env vars")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// userConfigPath returns the user config file under the XDG config dir.
// XDG_CONFIG_HOME wins over the value xdg resolved at startup.
func userConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	if configHome == "" {
		return ""
	}
	return filepath.Join(configHome, logging.AppDirName, UserFileName)
}

func findProjectFile(fsys afero.Fs, projectDir string) (string, koanf.Parser) {
	for _, name := range ProjectFiles {
		path := filepath.Join(projectDir, name)
		if !filesystem.IsFile(fsys, path) {
			continue
		}
		if strings.HasSuffix(name, ".toml") {
			return path, toml.Parser()
		}
		return path, yaml.Parser()
	}
	return "", nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, doctorerrors.Wrap(err, doctorerrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// Validate checks the thresholds and output settings are usable
func (c *Config) Validate() error {
	r := c.Rules
	switch {
	case r.MaxLines <= 0 || r.WarnLines <= 0 || r.MaxTotalLines <= 0:
		return doctorerrors.New(doctorerrors.ErrConfigValid, "line thresholds must be positive")
	case r.MaxAlwaysApply < 0:
		return doctorerrors.New(doctorerrors.ErrConfigValid, "max_always_apply must not be negative")
	case r.WarnLines > r.MaxLines:
		return doctorerrors.Newf(doctorerrors.ErrConfigValid,
			"warn_lines (%d) must not exceed max_lines (%d)", r.WarnLines, r.MaxLines)
	case !strings.HasPrefix(r.Extension, ".") || len(r.Extension) < 2:
		return doctorerrors.Newf(doctorerrors.ErrConfigValid, "invalid rule extension %q", r.Extension)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return doctorerrors.Newf(doctorerrors.ErrConfigValid,
			"output.color must be auto, always or never, got %q", c.Output.Color)
	}
	return nil
}
