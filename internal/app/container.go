// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/infra/config"
	"github.com/runoshun/tracker/internal/infra/crypto"
	"github.com/runoshun/tracker/internal/infra/export"
	"github.com/runoshun/tracker/internal/infra/filestore"
	"github.com/runoshun/tracker/internal/infra/gitstore"
	"github.com/runoshun/tracker/internal/infra/idgen"
	"github.com/runoshun/tracker/internal/infra/logging"
	"github.com/runoshun/tracker/internal/infra/memstore"
	"github.com/runoshun/tracker/internal/infra/mysqlstore"
	"github.com/runoshun/tracker/internal/infra/pgstore"
	"github.com/runoshun/tracker/internal/infra/redisstore"
	"github.com/runoshun/tracker/internal/infra/sqlitestore"
	"github.com/runoshun/tracker/internal/liststore"
	"github.com/runoshun/tracker/internal/usecase"
	"github.com/runoshun/tracker/internal/viewmodel"
)

// Config holds the application paths.
type Config struct {
	ProjectRoot string // Directory holding .tracker/ and .env
	DataDir     string // Base directory for file-based media and logs
}

// newConfig creates a new Config for the working directory.
func newConfig(dir string) Config {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	dataDir := ""
	if dataHome != "" {
		dataDir = domain.DataDir(dataHome)
	}
	return Config{
		ProjectRoot: dir,
		DataDir:     dataDir,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskCollection
	IDs           domain.IDGenerator
	Clock         domain.Clock
	Exporter      domain.TaskExporter
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the working directory.
// Configuration is loaded here; the durable medium is opened by OpenStore.
func New(dir string) (*Container, error) {
	cfg := newConfig(dir)

	configLoader := config.NewLoader(cfg.ProjectRoot)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ids, err := idgen.New(appConfig.IDs.Scheme)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		IDs:           ids,
		Clock:         domain.RealClock{},
		Exporter:      export.New(),
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.ProjectRoot),
		AppConfig:     appConfig,
		closers:       []io.Closer{logger},
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(appConfig *domain.Config, tasks domain.TaskCollection, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		IDs:       ids,
		Clock:     clock,
		Exporter:  export.New(),
		Logger:    logger,
		AppConfig: appConfig,
	}
}

// keyValidator is implemented by media that restrict key names.
type keyValidator interface {
	ValidateKey(key string) error
}

// OpenStore opens the configured medium and loads the task collection.
// It does nothing if the collection is already open.
func (c *Container) OpenStore(ctx context.Context) error {
	if c.Tasks != nil {
		return nil
	}

	storeKey := c.AppConfig.Store.Key
	if storeKey == "" {
		storeKey = domain.DefaultStoreKey
	}

	medium, err := c.openMedium(ctx)
	if err != nil {
		return err
	}
	if v, ok := medium.(keyValidator); ok {
		if err := v.ValidateKey(storeKey); err != nil {
			return err
		}
	}

	if key := c.AppConfig.Store.EncryptionKey; key != "" {
		enc, err := crypto.NewEncryptor(key)
		if err != nil {
			return err
		}
		medium = crypto.Wrap(medium, enc)
	}

	codec, err := liststore.CodecFor(c.AppConfig.Store.Format)
	if err != nil {
		return err
	}

	c.Tasks = liststore.Open(ctx, medium, storeKey, domain.Tasks{},
		liststore.WithCodec[domain.Tasks](codec),
		liststore.WithLogger[domain.Tasks](c.Logger),
		liststore.WithValidator(domain.Tasks.Validate),
	)
	c.Logger.Debug("app", fmt.Sprintf("opened %s store, key %q", c.backend(), storeKey))
	return nil
}

func (c *Container) backend() string {
	if b := c.AppConfig.Store.Backend; b != "" {
		return b
	}
	return domain.DefaultBackend
}

// storePath returns store.path, or name under the data directory.
func (c *Container) storePath(name string) (string, error) {
	if p := c.AppConfig.Store.Path; p != "" {
		return p, nil
	}
	if c.Config.DataDir == "" {
		return "", errors.New("no data directory: set store.path or XDG_DATA_HOME")
	}
	return filepath.Join(c.Config.DataDir, name), nil
}

func (c *Container) openMedium(ctx context.Context) (domain.Medium, error) {
	st := c.AppConfig.Store

	switch c.backend() {
	case domain.BackendMemory:
		return memstore.New(), nil

	case domain.BackendFile:
		dir, err := c.storePath(domain.DataDirName)
		if err != nil {
			return nil, err
		}
		return filestore.New(dir), nil

	case domain.BackendGit:
		path, err := c.storePath(domain.GitRepoDirName)
		if err != nil {
			return nil, err
		}
		s, err := gitstore.Open(path, st.Namespace)
		if err != nil {
			return nil, err
		}
		return s, nil

	case domain.BackendSQLite:
		path, err := c.storePath(domain.SQLiteFileName)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		s, err := sqlitestore.Open(path)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, s)
		return s, nil

	case domain.BackendRedis:
		s, err := redisstore.Open(ctx, st.Addr, st.Namespace)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, s)
		return s, nil

	case domain.BackendPostgres:
		s, err := pgstore.Open(ctx, st.DSN)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, s)
		return s, nil

	case domain.BackendMySQL:
		s, err := mysqlstore.Open(ctx, st.DSN)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, s)
		return s, nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, st.Backend)
}

// Close releases the medium connections and the log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.IDs, c.Clock, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, c.Exporter, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ViewModel returns a view-model over the task collection with the
// configured initial theme.
func (c *Container) ViewModel() *viewmodel.ViewModel {
	return viewmodel.New(c.Tasks, c.IDs, c.Clock, c.Logger, domain.ParseTheme(c.AppConfig.UI.Theme))
}
