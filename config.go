package masquerade

import "github.com/louisbranch/masquerade/internal/platform/config"

// Config holds module configuration. Every field has a usable default so
// a host can embed the module with zero environment setup.
type Config struct {
	// SettingsPath is the SQLite file backing per-user settings when the
	// host does not provide its own settings store.
	SettingsPath string `env:"MASQUERADE_SETTINGS_PATH" envDefault:"masquerade.db"`
	// UserID scopes persisted overrides to one user.
	UserID string `env:"MASQUERADE_USER_ID" envDefault:"local"`
	// AssetRoot is the directory image paths resolve against when the
	// host does not provide its own resource loader.
	AssetRoot string `env:"MASQUERADE_ASSET_ROOT" envDefault:"."`
	// Telemetry enables operational event recording.
	Telemetry bool `env:"MASQUERADE_TELEMETRY" envDefault:"true"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
