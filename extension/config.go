package extension

import "time"

// Config holds the token extension configuration.
// Fields can be set programmatically via Option functions or loaded from
// YAML configuration files (under "extensions.token" or "token" keys).
type Config struct {
	// Name is the token's display name (default: "Token").
	Name string `json:"name" mapstructure:"name" yaml:"name"`

	// Symbol is the token's ticker symbol (default: "TOK").
	Symbol string `json:"symbol" mapstructure:"symbol" yaml:"symbol"`

	// Creator is the hex identity that receives the initial supply.
	// A fresh random identity is generated when empty.
	Creator string `json:"creator" mapstructure:"creator" yaml:"creator"`

	// DisableMigrate prevents auto-migration on start.
	DisableMigrate bool `json:"disable_migrate" mapstructure:"disable_migrate" yaml:"disable_migrate"`

	// Restore loads the latest persisted snapshot from the store instead
	// of creating a fresh ledger. Falls back to a fresh ledger when the
	// store holds no snapshot.
	Restore bool `json:"restore" mapstructure:"restore" yaml:"restore"`

	// JournalBatchSize is the number of notification records to buffer
	// before flushing to the store (default: 100).
	JournalBatchSize int `json:"journal_batch_size" mapstructure:"journal_batch_size" yaml:"journal_batch_size"`

	// JournalFlushInterval is how frequently the journal buffer is flushed
	// even if the batch size has not been reached (default: 5s).
	JournalFlushInterval time.Duration `json:"journal_flush_interval" mapstructure:"journal_flush_interval" yaml:"journal_flush_interval"`

	// RequireConfig requires config to be present in YAML files.
	// If true and no config is found, Register returns an error.
	RequireConfig bool `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:                 "Token",
		Symbol:               "TOK",
		JournalBatchSize:     100,
		JournalFlushInterval: 5 * time.Second,
	}
}
