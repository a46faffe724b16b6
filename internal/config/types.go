package config

// Config represents the complete onechat configuration structure
type Config struct {
	Token        string        `yaml:"token"          env:"ONECHAT_TOKEN"`
	DefaultTo    string        `yaml:"default_to"     env:"ONECHAT_TO"`
	DefaultBotID string        `yaml:"default_bot_id" env:"ONECHAT_BOT_ID"`
	BaseURL      string        `yaml:"base_url"       env:"ONECHAT_BASE_URL"`
	HTTP         HTTPConfig    `yaml:"http"`
	Logging      LoggingConfig `yaml:"logging"`
}

// HTTPConfig represents transport timeouts as duration strings (e.g. "5s")
type HTTPConfig struct {
	ConnectTimeout string `yaml:"connect_timeout" env:"ONECHAT_CONNECT_TIMEOUT"`
	ReadTimeout    string `yaml:"read_timeout"    env:"ONECHAT_READ_TIMEOUT"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level         string `yaml:"level"          env:"ONECHAT_LOG_LEVEL"`  // debug, info, warn, error
	Format        string `yaml:"format"         env:"ONECHAT_LOG_FORMAT"` // json or text
	File          string `yaml:"file"           env:"ONECHAT_LOG_FILE"`   // Log file path
	MaxSize       int    `yaml:"max_size"`                                // Single file max size in MB (default: 100)
	MaxBackups    int    `yaml:"max_backups"`                             // Number of backups to keep (default: 5)
	MaxAge        int    `yaml:"max_age"`                                 // Maximum days to retain (default: 30)
	Compress      bool   `yaml:"compress"`                                // Whether to compress old logs
	EnableConsole bool   `yaml:"enable_console"`                          // Also log to stderr
}
