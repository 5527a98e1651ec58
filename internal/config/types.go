package config

// Config is the root configuration for the edX voice skill service.
type Config struct {
	OAuth   OAuthConfig   `yaml:"oauth,omitempty"`
	API     APIConfig     `yaml:"api,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// OAuthConfig holds the service credential used for catalog calls.
// User tokens arrive with each voice request and are not configured here.
type OAuthConfig struct {
	AccessTokenURL string `yaml:"accessTokenUrl"`
	ClientID       string `yaml:"clientId"`
	ClientSecret   string `yaml:"clientSecret"`
}

// APIConfig holds base URLs for the two upstream services.
type APIConfig struct {
	LMSURL     string `yaml:"lmsUrl"`
	CatalogURL string `yaml:"catalogUrl"`
}

// ServerConfig controls the inbound HTTP listener.
type ServerConfig struct {
	Port int    `yaml:"port,omitempty"`
	Bind string `yaml:"bind,omitempty"` // "loopback" | "lan" | "custom"
	Host string `yaml:"host,omitempty"` // used when bind is "custom"
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
}

// ConfigError indicates a problem reading or parsing configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
