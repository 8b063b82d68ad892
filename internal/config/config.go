package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Instance      InstanceConfig      `yaml:"instance"`
	Database      DatabaseConfig      `yaml:"database"`
	Admin         AdminConfig         `yaml:"admin"`
	Registry      RegistryConfig      `yaml:"registry"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Log           LogConfig           `yaml:"log"`
}

// InstanceConfig identifies this bot instance (dev/qa/company deployments
// run side by side against separate databases).
type InstanceConfig struct {
	Name string `yaml:"name" env:"INSTANCE_NAME" env-default:"dev"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AdminConfig holds the fixed admin membership. Admin IDs are external chat
// user IDs; the set is loaded once at startup and never mutated at runtime.
type AdminConfig struct {
	UserIDs []int64 `yaml:"user_ids" env:"ADMIN_USER_IDS" env-separator:","`
}

// RegistryConfig holds the paging bounds for listing commands.
type RegistryConfig struct {
	ListPageSize    int `yaml:"list_page_size"     env:"REGISTRY_LIST_PAGE_SIZE"     env-default:"50"`
	ListMaxPageSize int `yaml:"list_max_page_size" env:"REGISTRY_LIST_MAX_PAGE_SIZE" env-default:"200"`
}

// NotificationsConfig controls notification fan-out computation.
type NotificationsConfig struct {
	// NotifyStolenOwner adds the dispossessed owner to the recipient list of
	// every steal, on top of the type's subscribers.
	NotifyStolenOwner bool `yaml:"notify_stolen_owner" env:"NOTIFY_STOLEN_OWNER" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// IsAdmin reports whether the given user ID is in the configured admin set.
func (c AdminConfig) IsAdmin(userID int64) bool {
	return slices.Contains(c.UserIDs, userID)
}
