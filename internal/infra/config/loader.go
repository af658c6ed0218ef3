// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tracker/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files, a .env file and the environment.
type Loader struct {
	lookupEnv     func(string) (string, bool)
	projectRoot   string // Directory holding .tracker/ and .env
	globalConfDir string // Path to global config directory (e.g., ~/.config/tracker)
}

// NewLoader creates a new Loader.
func NewLoader(projectRoot string) *Loader {
	return NewLoaderWithGlobalDir(projectRoot, defaultGlobalConfigDir())
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectRoot, globalConfDir string) *Loader {
	return &Loader{
		projectRoot:   projectRoot,
		globalConfDir: globalConfDir,
		lookupEnv:     os.LookupEnv,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalDir(configHome)
}

// Load returns the merged configuration.
// Precedence, lowest first: defaults, global file, project file, .env, environment.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	env, err := l.loadEnv()
	if err != nil {
		return nil, err
	}
	return mergeConfigs(base, env), nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	return l.loadFile(domain.ProjectConfigPath(l.projectRoot))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// envKeys maps TRACKER_* variables to the field they set.
var envKeys = map[string]func(*domain.Config, string){
	"STORE_BACKEND":  func(c *domain.Config, v string) { c.Store.Backend = v },
	"STORE_KEY":      func(c *domain.Config, v string) { c.Store.Key = v },
	"STORE_PATH":     func(c *domain.Config, v string) { c.Store.Path = v },
	"STORE_DSN":      func(c *domain.Config, v string) { c.Store.DSN = v },
	"STORE_ADDR":     func(c *domain.Config, v string) { c.Store.Addr = v },
	"STORE_FORMAT":   func(c *domain.Config, v string) { c.Store.Format = v },
	"ENCRYPTION_KEY": func(c *domain.Config, v string) { c.Store.EncryptionKey = v },
	"LOG_LEVEL":      func(c *domain.Config, v string) { c.Log.Level = v },
	"THEME":          func(c *domain.Config, v string) { c.UI.Theme = v },
	"ID_SCHEME":      func(c *domain.Config, v string) { c.IDs.Scheme = v },
}

// loadEnv builds a config layer from the project .env file and the process
// environment. Process variables win over the file.
func (l *Loader) loadEnv() (*domain.Config, error) {
	fileVars := map[string]string{}
	if l.projectRoot != "" {
		path := filepath.Join(l.projectRoot, domain.EnvFileName)
		vars, err := godotenv.Read(path)
		switch {
		case err == nil:
			fileVars = vars
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	res := &domain.Config{}
	prefix := domain.EnvNamespace + "_"
	for suffix, set := range envKeys {
		name := prefix + suffix
		if v, ok := l.lookupEnv(name); ok && v != "" {
			set(res, v)
		} else if v := fileVars[name]; v != "" {
			set(res, v)
		}
	}

	for name := range fileVars {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			if _, known := envKeys[rest]; !known {
				res.Warnings = append(res.Warnings, fmt.Sprintf("unknown variable in %s: %s", domain.EnvFileName, name))
			}
		}
	}
	sort.Strings(res.Warnings)
	return res, nil
}

// stringFields assigns each known key of a section through its setter.
func stringFields(section string, m map[string]any, setters map[string]func(string), warnings *[]string) {
	for k, v := range m {
		set, ok := setters[k]
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			continue
		}
		s, ok := v.(string)
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf("[%s].%s must be a string", section, k))
			continue
		}
		set(s)
	}
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			stringFields(section, m, map[string]func(string){
				"backend":        func(s string) { res.Store.Backend = s },
				"key":            func(s string) { res.Store.Key = s },
				"path":           func(s string) { res.Store.Path = s },
				"dsn":            func(s string) { res.Store.DSN = s },
				"addr":           func(s string) { res.Store.Addr = s },
				"namespace":      func(s string) { res.Store.Namespace = s },
				"encryption_key": func(s string) { res.Store.EncryptionKey = s },
				"format":         func(s string) { res.Store.Format = s },
			}, &warnings)
		case "ui":
			stringFields(section, m, map[string]func(string){
				"theme": func(s string) { res.UI.Theme = s },
			}, &warnings)
		case "ids":
			stringFields(section, m, map[string]func(string){
				"scheme": func(s string) { res.IDs.Scheme = s },
			}, &warnings)
		case "log":
			stringFields(section, m, map[string]func(string){
				"level": func(s string) { res.Log.Level = s },
			}, &warnings)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	if len(override.Warnings) > 0 {
		result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)
	}

	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&result.Store.Backend, override.Store.Backend)
	pick(&result.Store.Key, override.Store.Key)
	pick(&result.Store.Path, override.Store.Path)
	pick(&result.Store.DSN, override.Store.DSN)
	pick(&result.Store.Addr, override.Store.Addr)
	pick(&result.Store.Namespace, override.Store.Namespace)
	pick(&result.Store.EncryptionKey, override.Store.EncryptionKey)
	pick(&result.Store.Format, override.Store.Format)
	pick(&result.UI.Theme, override.UI.Theme)
	pick(&result.IDs.Scheme, override.IDs.Scheme)
	pick(&result.Log.Level, override.Log.Level)

	return &result
}
