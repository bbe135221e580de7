// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Monday  MondayConfig  `mapstructure:"monday"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int      `mapstructure:"write_timeout"` // milliseconds
}

// MondayConfig holds settings for the Monday.com GraphQL API and the two
// boards the service reads from. Board IDs take precedence over names.
type MondayConfig struct {
	APIURL     string `mapstructure:"api_url"`
	APIToken   string `mapstructure:"api_token"`
	APIVersion string `mapstructure:"api_version"`
	Timeout    int    `mapstructure:"timeout"`     // milliseconds
	MaxRetries int    `mapstructure:"max_retries"` // for transient API errors
	ItemLimit  int    `mapstructure:"item_limit"`  // max items fetched per board

	DealsBoardID       string `mapstructure:"deals_board_id"`
	DealsBoardName     string `mapstructure:"deals_board_name"`
	WorkOrderBoardID   string `mapstructure:"work_orders_board_id"`
	WorkOrderBoardName string `mapstructure:"work_orders_board_name"`
}

// RedisConfig holds settings for the optional raw-item cache.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	CacheTTL int    `mapstructure:"cache_ttl"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
