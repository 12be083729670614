package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/config"
	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/internal/log"
	"github.com/iw2rmb/scribe/store"
)

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".scribe", "config.yaml")
}

// env is what every command needs: the configuration, a logger and an open
// store.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  store.Store
	key    string
	close  func() error
}

func (e *env) Close() error {
	log.Flush()
	if e.close == nil {
		return nil
	}
	return e.close()
}

func (e *env) options() document.Options {
	return document.Options{HistoryLimit: e.cfg.Editor.HistoryLimit}
}

// loadEnv reads the configuration and opens the store. With tui set, a log
// without a path goes to a file because the terminal belongs to the UI.
func loadEnv(tui bool) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	opts := log.Options{
		Enabled: cfg.Log.Enabled || logVerbose,
		Path:    cfg.Log.Path,
		Verbose: cfg.Log.Verbose || logVerbose,
	}
	if tui && opts.Enabled && opts.Path == "" {
		opts.Path = filepath.Join(os.TempDir(), "scribe.log")
	}
	if err := log.Set(opts); err != nil {
		return nil, errors.Wrap(err, "failed to configure logging")
	}
	logger := log.Get()

	s, closeFn, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	key := cfg.Storage.Key
	if storageKey != "" {
		key = storageKey
	}

	logger.Debug("environment loaded",
		zap.String("config", configPath),
		zap.String("backend", cfg.Storage.Backend),
		zap.String("key", key),
	)

	return &env{cfg: cfg, logger: logger, store: s, key: key, close: closeFn}, nil
}

func openStore(cfg *config.Config, logger *zap.Logger) (store.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil, nil
	case config.BackendFile:
		path, err := cfg.StoragePath()
		if err != nil {
			return nil, nil, err
		}
		s, err := store.NewFileStore(path, logger)
		return s, nil, err
	case config.BackendSQLite:
		path, err := cfg.StoragePath()
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, errors.WithStack(err)
		}
		s, err := store.OpenSQLite(path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
