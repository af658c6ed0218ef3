package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
type Config struct {
	Warnings []string    `toml:"-"`
	Store    StoreConfig `toml:"store"`
	UI       UIConfig    `toml:"ui"`
	IDs      IDsConfig   `toml:"ids"`
	Log      LogConfig   `toml:"log"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Backend       string `toml:"backend,omitempty"`        // file (default), git, sqlite, redis, postgres, mysql, memory
	Key           string `toml:"key,omitempty"`            // Fixed key of the durable entry (default: todos)
	Path          string `toml:"path,omitempty"`           // Directory, repository or database file, depending on backend
	DSN           string `toml:"dsn,omitempty"`            // Connection string for postgres and mysql
	Addr          string `toml:"addr,omitempty"`           // host:port for redis
	Namespace     string `toml:"namespace,omitempty"`      // Ref namespace (git) or key prefix (redis)
	EncryptionKey string `toml:"encryption_key,omitempty"` // 64 hex chars enables AES-256-GCM at rest
	Format        string `toml:"format,omitempty"`         // Value encoding: json (default) or yaml
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	Theme string `toml:"theme,omitempty"` // Initial theme on every start: light (default) or dark
}

// IDsConfig holds settings from the [ids] section.
type IDsConfig struct {
	Scheme string `toml:"scheme,omitempty"` // uuid (default) or nanoid
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Store backends.
const (
	BackendFile     = "file"
	BackendGit      = "git"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMySQL    = "mysql"
	BackendMemory   = "memory"
)

// ID schemes.
const (
	IDSchemeUUID   = "uuid"
	IDSchemeNanoID = "nanoid"
)

// Default configuration values.
const (
	DefaultStoreKey   = "todos"
	DefaultNamespace  = "tracker"
	DefaultLogLevel   = "info"
	DefaultEncoding   = "json"
	DefaultBackend    = BackendFile
	DefaultIDScheme   = IDSchemeUUID
	DefaultThemeLabel = "light"
)

// Directory and file names.
const (
	AppDirName     = "tracker"
	ProjectDirName = ".tracker"
	ConfigFileName = "config.toml"
	EnvFileName    = ".env"
	DataDirName    = "data"
	LogsDirName    = "logs"
	LogFileName    = "tracker.log"
	SQLiteFileName = "tracker.db"
	GitRepoDirName = "repo"
	EnvNamespace   = "TRACKER"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   DefaultBackend,
			Key:       DefaultStoreKey,
			Namespace: DefaultNamespace,
			Format:    DefaultEncoding,
		},
		UI:  UIConfig{Theme: DefaultThemeLabel},
		IDs: IDsConfig{Scheme: DefaultIDScheme},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// GlobalDir returns the global tracker directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalDir(configHome), ConfigFileName)
}

// ProjectDir returns the per-directory tracker directory.
func ProjectDir(root string) string {
	return filepath.Join(root, ProjectDirName)
}

// ProjectConfigPath returns the per-directory config path.
func ProjectConfigPath(root string) string {
	return filepath.Join(ProjectDir(root), ConfigFileName)
}

// DataDir returns the default directory for file-based media.
// dataHome is typically XDG_DATA_HOME or ~/.local/share.
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the log file path under dir.
func LogPath(dir string) string {
	return filepath.Join(dir, LogsDirName, LogFileName)
}

// templateData holds the values substituted into the config template.
type templateData struct {
	Backend  string
	Key      string
	Theme    string
	IDScheme string
	LogLevel string
}

// RenderConfigTemplate renders the commented config template for cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	data := templateData{
		Backend:  cfg.Store.Backend,
		Key:      cfg.Store.Key,
		Theme:    cfg.UI.Theme,
		IDScheme: cfg.IDs.Scheme,
		LogLevel: cfg.Log.Level,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
