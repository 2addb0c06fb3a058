package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses raw YAML, applies environment overrides and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvOIDCClientID          = "VIEWER_OIDC_CLIENT_ID"
	EnvOIDCClientSecret      = "VIEWER_OIDC_CLIENT_SECRET"
	EnvOIDCIssuerURL         = "VIEWER_OIDC_ISSUER_URL"
	EnvOIDCRedirectURL       = "VIEWER_OIDC_REDIRECT_URL"
	EnvRedisPassword         = "VIEWER_REDIS_PASSWORD"
	EnvRedisUsername         = "VIEWER_REDIS_USERNAME"
	EnvRedisSentinelUsername = "VIEWER_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword = "VIEWER_REDIS_SENTINEL_PASSWORD"
	EnvStorageHost           = "VIEWER_STORAGE_HOST"
	EnvStoragePort           = "VIEWER_STORAGE_PORT"
	EnvStorageUsername       = "VIEWER_STORAGE_USERNAME"
	EnvStoragePassword       = "VIEWER_STORAGE_PASSWORD"
	EnvStorageDatabase       = "VIEWER_STORAGE_DATABASE"
)

func applyEnvironmentOverrides(config *Config) {
	oidc := func() *OIDCConfig {
		if config.Authentication.OIDC == nil {
			config.Authentication.OIDC = &OIDCConfig{}
		}
		return config.Authentication.OIDC
	}

	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		oidc().ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		oidc().ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvOIDCIssuerURL); issuerURL != "" {
		oidc().IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvOIDCRedirectURL); redirectURL != "" {
		oidc().RedirectURI = redirectURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}

	if host := os.Getenv(EnvStorageHost); host != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Host = host
	}

	if portStr := os.Getenv(EnvStoragePort); portStr != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Storage.Port = port
		}
	}

	if username := os.Getenv(EnvStorageUsername); username != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Username = username
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Password = password
	}

	if database := os.Getenv(EnvStorageDatabase); database != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Database = database
	}
}

func validateConfig(config *Config) error {
	validators := []func() error{
		config.validateServerConfig,
		config.validateLogConfig,
		config.validateCORSConfig,
		config.validateSessionConfig,
		config.validateAuthenticationConfig,
		config.validateBreadcrumbsConfig,
		config.validateStorageConfig,
		config.validateSessionLogConfig,
		config.validateDistributedConfig,
	}

	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}

	if config.Sessions.Store == "redis" || (config.Distributed != nil && config.Distributed.Enabled) {
		if err := config.validateRedisConfig(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.ExternalURL != "" {
		if err := validateURL(c.Server.ExternalURL, "server.external_url"); err != nil {
			return err
		}
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	switch c.Sessions.Store {
	case "":
		c.Sessions.Store = DefaultSessionConfig.Store
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.Lifetime == 0 {
		c.Sessions.Lifetime = DefaultSessionConfig.Lifetime
	} else if c.Sessions.Lifetime < 0 {
		return fmt.Errorf("sessions.lifetime must be positive")
	}

	if c.Sessions.IdleTimeout == 0 {
		c.Sessions.IdleTimeout = DefaultSessionConfig.IdleTimeout
	} else if c.Sessions.IdleTimeout < 0 {
		return fmt.Errorf("sessions.idle_timeout must be positive")
	}

	if c.Sessions.IdleTimeout > c.Sessions.Lifetime {
		return fmt.Errorf("sessions.idle_timeout (%s) cannot exceed sessions.lifetime (%s)", c.Sessions.IdleTimeout, c.Sessions.Lifetime)
	}

	if c.Sessions.ExpirySweep == 0 {
		c.Sessions.ExpirySweep = DefaultSessionConfig.ExpirySweep
	} else if c.Sessions.ExpirySweep < time.Second {
		return fmt.Errorf("sessions.expiry_sweep cannot be less than 1 second")
	}

	return nil
}

func (c *Config) validateAuthenticationConfig() error {
	seen := make(map[string]struct{}, len(c.Authentication.Users))
	for i, user := range c.Authentication.Users {
		if user.Username == "" {
			return fmt.Errorf("authentication.users[%d].username is required", i)
		}
		if user.PasswordHash == "" {
			return fmt.Errorf("authentication.users[%d].password_hash is required", i)
		}
		if _, exists := seen[user.Username]; exists {
			return fmt.Errorf("authentication.users[%d].username %q is duplicated", i, user.Username)
		}
		seen[user.Username] = struct{}{}
	}

	oidc := c.Authentication.OIDC
	if oidc == nil || !oidc.Enabled {
		if len(c.Authentication.Users) == 0 {
			return fmt.Errorf("at least one authentication method is required: configure authentication.users or enable authentication.oidc")
		}
		return nil
	}

	if oidc.ClientID == "" {
		return fmt.Errorf("oidc client id is required")
	}

	if oidc.ClientSecret == "" {
		return fmt.Errorf("oidc client secret is required")
	}

	if err := validateURL(oidc.IssuerURL, "authentication.oidc.issuer_url"); err != nil {
		return err
	}

	if err := validateURL(oidc.RedirectURI, "authentication.oidc.redirect_url"); err != nil {
		return err
	}

	if len(oidc.Scopes) == 0 {
		oidc.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateBreadcrumbsConfig() error {
	if c.Breadcrumbs.MaxBreadcrumbs == 0 {
		c.Breadcrumbs.MaxBreadcrumbs = DefaultBreadcrumbsConfig.MaxBreadcrumbs
	} else if c.Breadcrumbs.MaxBreadcrumbs < 0 {
		return fmt.Errorf("breadcrumbs.max_breadcrumbs must be positive, got %d", c.Breadcrumbs.MaxBreadcrumbs)
	}

	if c.Breadcrumbs.MaxBookmarks == 0 {
		c.Breadcrumbs.MaxBookmarks = DefaultBreadcrumbsConfig.MaxBookmarks
	} else if c.Breadcrumbs.MaxBookmarks < 0 {
		return fmt.Errorf("breadcrumbs.max_bookmarks must be positive, got %d", c.Breadcrumbs.MaxBookmarks)
	}

	return nil
}

func (c *Config) validateSessionLogConfig() error {
	if len(c.SessionLog.Sinks) == 0 {
		c.SessionLog.Sinks = DefaultSessionLogConfig.Sinks
	}

	for i, sink := range c.SessionLog.Sinks {
		switch sink {
		case "log", "metrics", "none":
		case "storage":
			if c.Storage == nil || !c.Storage.Enabled {
				return fmt.Errorf("session_log.sinks[%d]: storage must be enabled to use the storage sink", i)
			}
		default:
			return fmt.Errorf("invalid session_log sink: %s, options are 'log', 'storage', 'metrics' or 'none'", sink)
		}
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" && c.Redis.Sentinel == nil {
		return fmt.Errorf("redis address is required")
	}

	if c.Redis.Address != "" {
		if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
			return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
		}
	}

	if c.Redis.SessionIndex == 0 && c.Redis.RegistryIndex == 0 && c.Redis.LeaderIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.RegistryIndex = DefaultRedisConfig.RegistryIndex
		c.Redis.LeaderIndex = DefaultRedisConfig.LeaderIndex
	}

	const maxRedisDB = 15
	indices := []struct {
		name  string
		value int
	}{
		{"session_index", c.Redis.SessionIndex},
		{"registry_index", c.Redis.RegistryIndex},
		{"leader_index", c.Redis.LeaderIndex},
	}

	for _, idx := range indices {
		if idx.value < 0 {
			return fmt.Errorf("redis %s must be non-negative, got %d", idx.name, idx.value)
		}
		if idx.value > maxRedisDB {
			return fmt.Errorf("redis %s %d exceeds typical maximum of %d", idx.name, idx.value, maxRedisDB)
		}
	}

	for i := 0; i < len(indices); i++ {
		for j := i + 1; j < len(indices); j++ {
			if indices[i].value == indices[j].value {
				return fmt.Errorf("redis %s and %s should be different to avoid data collision (both are %d)", indices[i].name, indices[j].name, indices[i].value)
			}
		}
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	}

	return nil
}

func (c *Config) validateDistributedConfig() error {
	if c.Distributed == nil || !c.Distributed.Enabled {
		return nil
	}

	if c.Sessions.Store != "redis" {
		return fmt.Errorf("distributed mode requires sessions.store to be 'redis'")
	}

	if c.Distributed.TTL.Seconds() <= 0 {
		c.Distributed.TTL = DefaultDistributedConfig.TTL
	} else if c.Distributed.TTL > time.Minute {
		return fmt.Errorf("distributed ttl cannot be more than 1 minute")
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage == nil || !c.Storage.Enabled {
		return nil
	}

	if c.Storage.Host == "" {
		return fmt.Errorf("storage.host is required when storage is enabled")
	}

	if c.Storage.Port <= 0 || c.Storage.Port > 65535 {
		return fmt.Errorf("storage.port must be between 1 and 65535, got %d", c.Storage.Port)
	}

	if c.Storage.Database == "" {
		return fmt.Errorf("storage.database is required when storage is enabled")
	}

	return nil
}

// OIDCEnabled reports whether the OIDC login flow is configured.
func (c *Config) OIDCEnabled() bool {
	return c.Authentication.OIDC != nil && c.Authentication.OIDC.Enabled
}

// StorageEnabled reports whether the postgres storage is configured.
func (c *Config) StorageEnabled() bool {
	return c.Storage != nil && c.Storage.Enabled
}
