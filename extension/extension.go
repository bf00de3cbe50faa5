// Package extension provides the Forge extension adapter for the token
// ledger.
//
// It implements the forge.Extension interface to integrate the ledger
// into a Forge application with automatic dependency discovery,
// DI registration, and lifecycle management.
//
// Configuration can be provided programmatically via Option functions
// or via YAML configuration files under "extensions.token" or "token" keys.
package extension

import (
	"context"
	"errors"

	"github.com/xraph/forge"
	"github.com/xraph/vessel"

	"github.com/xraph/token"
	"github.com/xraph/token/store"
	"github.com/xraph/token/store/memory"
	"github.com/xraph/token/types"
)

// ExtensionName is the name registered with Forge.
const ExtensionName = "token"

// ExtensionDescription is the human-readable description.
const ExtensionDescription = "Embeddable fungible-token accounting engine"

// ExtensionVersion is the semantic version.
const ExtensionVersion = "0.1.0"

// Ensure Extension implements forge.Extension at compile time.
var _ forge.Extension = (*Extension)(nil)

// Extension adapts the token ledger as a Forge extension.
type Extension struct {
	*forge.BaseExtension

	config     Config
	engine     *token.Ledger
	store      store.Store
	ledgerOpts []token.Option
}

// New creates a new token Forge extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		BaseExtension: forge.NewBaseExtension(ExtensionName, ExtensionVersion, ExtensionDescription),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Engine returns the underlying Ledger instance.
// This is nil until Register is called.
func (e *Extension) Engine() *token.Ledger { return e.engine }

// Register implements [forge.Extension]. It loads configuration,
// initializes the ledger engine, and registers it in the DI container.
func (e *Extension) Register(fapp forge.App) error {
	if err := e.BaseExtension.Register(fapp); err != nil {
		return err
	}

	if err := e.loadConfiguration(); err != nil {
		return err
	}

	// Use memory store if no store was provided programmatically.
	if e.store == nil {
		e.store = memory.New()
	}

	eng, err := e.buildEngine()
	if err != nil {
		return err
	}
	e.engine = eng

	return vessel.Provide(fapp.Container(), func() (*token.Ledger, error) {
		return e.engine, nil
	})
}

// Start implements [forge.Extension].
func (e *Extension) Start(ctx context.Context) error {
	if e.engine == nil {
		return errors.New("token: extension not initialized")
	}

	if err := e.engine.Start(ctx); err != nil {
		return err
	}

	e.MarkStarted()
	return nil
}

// Stop implements [forge.Extension].
func (e *Extension) Stop(_ context.Context) error {
	if e.engine != nil {
		if err := e.engine.Stop(); err != nil {
			e.MarkStopped()
			return err
		}
	}
	e.MarkStopped()
	return nil
}

// Health implements [forge.Extension].
func (e *Extension) Health(ctx context.Context) error {
	if e.store == nil {
		return errors.New("token: store not initialized")
	}
	return e.store.Ping(ctx)
}

// buildEngine constructs the ledger from the resolved config, restoring
// from the latest snapshot when configured.
func (e *Extension) buildEngine() (*token.Ledger, error) {
	opts := make([]token.Option, 0, len(e.ledgerOpts)+2)
	opts = append(opts, token.WithJournalConfig(e.config.JournalBatchSize, e.config.JournalFlushInterval))
	if e.config.DisableMigrate {
		opts = append(opts, token.WithoutMigrate())
	}
	opts = append(opts, e.ledgerOpts...)

	if e.config.Restore {
		eng, err := token.Load(context.Background(), e.store, opts...)
		if err == nil {
			return eng, nil
		}
		if !errors.Is(err, token.ErrSnapshotNotFound) {
			return nil, err
		}
		e.Logger().Debug("token: no snapshot to restore, creating fresh ledger")
	}

	creator, err := e.resolveCreator()
	if err != nil {
		return nil, err
	}

	return token.New(e.store, e.config.Name, e.config.Symbol, creator, opts...)
}

// resolveCreator parses the configured creator identity, generating a
// fresh one when unset.
func (e *Extension) resolveCreator() (types.Identity, error) {
	if e.config.Creator == "" {
		creator := types.NewIdentity()
		e.Logger().Info("token: generated creator identity",
			forge.F("creator", creator.String()),
		)
		return creator, nil
	}
	return types.ParseIdentity(e.config.Creator)
}

// --- Config Loading (mirrors grove/shield extension pattern) ---

// loadConfiguration loads config from YAML files or programmatic sources.
func (e *Extension) loadConfiguration() error {
	programmaticConfig := e.config

	// Try loading from config file.
	fileConfig, configLoaded := e.tryLoadFromConfigFile()

	if !configLoaded {
		if programmaticConfig.RequireConfig {
			return errors.New("token: configuration is required but not found in config files; " +
				"ensure 'extensions.token' or 'token' key exists in your config")
		}

		// Use programmatic config merged with defaults.
		e.config = e.mergeWithDefaults(programmaticConfig)
	} else {
		// Config loaded from YAML -- merge with programmatic options.
		e.config = e.mergeConfigurations(fileConfig, programmaticConfig)
	}

	e.Logger().Debug("token: configuration loaded",
		forge.F("name", e.config.Name),
		forge.F("symbol", e.config.Symbol),
		forge.F("disable_migrate", e.config.DisableMigrate),
		forge.F("restore", e.config.Restore),
		forge.F("journal_batch_size", e.config.JournalBatchSize),
		forge.F("journal_flush_interval", e.config.JournalFlushInterval),
	)

	return nil
}

// tryLoadFromConfigFile attempts to load config from YAML files.
func (e *Extension) tryLoadFromConfigFile() (Config, bool) {
	cm := e.App().Config()
	var cfg Config

	// Try "extensions.token" first (namespaced pattern).
	if cm.IsSet("extensions.token") {
		if err := cm.Bind("extensions.token", &cfg); err == nil {
			e.Logger().Debug("token: loaded config from file",
				forge.F("key", "extensions.token"),
			)
			return cfg, true
		}
		e.Logger().Warn("token: failed to bind extensions.token config",
			forge.F("error", "bind failed"),
		)
	}

	// Try legacy "token" key.
	if cm.IsSet("token") {
		if err := cm.Bind("token", &cfg); err == nil {
			e.Logger().Debug("token: loaded config from file",
				forge.F("key", "token"),
			)
			return cfg, true
		}
		e.Logger().Warn("token: failed to bind token config",
			forge.F("error", "bind failed"),
		)
	}

	return Config{}, false
}

// mergeWithDefaults fills zero-valued fields with defaults.
func (e *Extension) mergeWithDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if cfg.Name == "" {
		cfg.Name = defaults.Name
	}
	if cfg.Symbol == "" {
		cfg.Symbol = defaults.Symbol
	}
	if cfg.JournalBatchSize == 0 {
		cfg.JournalBatchSize = defaults.JournalBatchSize
	}
	if cfg.JournalFlushInterval == 0 {
		cfg.JournalFlushInterval = defaults.JournalFlushInterval
	}
	return cfg
}

// mergeConfigurations merges YAML config with programmatic options.
// YAML config takes precedence for most fields; programmatic bool flags fill gaps.
func (e *Extension) mergeConfigurations(yamlConfig, programmaticConfig Config) Config {
	// Programmatic bool flags override when true.
	if programmaticConfig.DisableMigrate {
		yamlConfig.DisableMigrate = true
	}
	if programmaticConfig.Restore {
		yamlConfig.Restore = true
	}

	// String fields: YAML takes precedence.
	if yamlConfig.Name == "" && programmaticConfig.Name != "" {
		yamlConfig.Name = programmaticConfig.Name
	}
	if yamlConfig.Symbol == "" && programmaticConfig.Symbol != "" {
		yamlConfig.Symbol = programmaticConfig.Symbol
	}
	if yamlConfig.Creator == "" && programmaticConfig.Creator != "" {
		yamlConfig.Creator = programmaticConfig.Creator
	}

	// Duration/int fields: YAML takes precedence, programmatic fills gaps.
	if yamlConfig.JournalBatchSize == 0 && programmaticConfig.JournalBatchSize != 0 {
		yamlConfig.JournalBatchSize = programmaticConfig.JournalBatchSize
	}
	if yamlConfig.JournalFlushInterval == 0 && programmaticConfig.JournalFlushInterval != 0 {
		yamlConfig.JournalFlushInterval = programmaticConfig.JournalFlushInterval
	}

	// Fill remaining zeros with defaults.
	return e.mergeWithDefaults(yamlConfig)
}
