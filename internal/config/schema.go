package config

import (
	"time"
)

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Log            LogConfig            `yaml:"log"`
	CORS           CORSConfig           `yaml:"cors"`
	Sessions       SessionConfig        `yaml:"sessions"`
	Authentication AuthenticationConfig `yaml:"authentication"`
	SessionLog     SessionLogConfig     `yaml:"session_log"`
	Breadcrumbs    BreadcrumbsConfig    `yaml:"breadcrumbs"`
	Redis          *RedisConfig         `yaml:"redis"`
	Distributed    *DistributedConfig   `yaml:"distributed"`
	Storage        *StorageConfig       `yaml:"storage"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store             string        `yaml:"store"`
	Lifetime          time.Duration `yaml:"lifetime"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ExpirySweep       time.Duration `yaml:"expiry_sweep"`
	Name              string        `yaml:"name"`
	Secure            bool          `yaml:"secure"`
	RenewTokenOnLogin bool          `yaml:"renew_token_on_login"`
}

var DefaultSessionConfig = SessionConfig{
	Store:       "memory",
	Lifetime:    24 * time.Hour,
	IdleTimeout: 30 * time.Minute,
	ExpirySweep: time.Minute,
	Name:        "session_id",
	Secure:      true,
}

type AuthenticationConfig struct {
	Users []UserConfig `yaml:"users"`
	OIDC  *OIDCConfig  `yaml:"oidc"`
}

// UserConfig is a locally configured account. PasswordHash is a bcrypt hash.
type UserConfig struct {
	Username     string   `yaml:"username"`
	DisplayName  string   `yaml:"display_name"`
	PasswordHash string   `yaml:"password_hash"`
	Roles        []string `yaml:"roles"`
}

type OIDCConfig struct {
	Enabled      bool                `yaml:"enabled"`
	ClientID     string              `yaml:"client_id"`
	ClientSecret string              `yaml:"client_secret"`
	IssuerURL    string              `yaml:"issuer_url"`
	RedirectURI  string              `yaml:"redirect_url"`
	Scopes       []string            `yaml:"scopes"`
	GroupRoles   map[string][]string `yaml:"group_roles"`
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email", "groups"},
}

type SessionLogConfig struct {
	// Sinks is any combination of "log", "storage" and "metrics".
	Sinks []string `yaml:"sinks"`
}

var DefaultSessionLogConfig = SessionLogConfig{
	Sinks: []string{"log", "metrics"},
}

type BreadcrumbsConfig struct {
	MaxBreadcrumbs int `yaml:"max_breadcrumbs"`
	MaxBookmarks   int `yaml:"max_bookmarks"`
}

var DefaultBreadcrumbsConfig = BreadcrumbsConfig{
	MaxBreadcrumbs: 30,
	MaxBookmarks:   15,
}

type RedisConfig struct {
	Address       string               `yaml:"address"`
	Username      string               `yaml:"username"`
	Password      string               `yaml:"password"`
	Sentinel      *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex  int                  `yaml:"session_index"`
	RegistryIndex int                  `yaml:"registry_index"`
	LeaderIndex   int                  `yaml:"leader_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex:  0,
	RegistryIndex: 1,
	LeaderIndex:   2,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

type DistributedConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

var DefaultDistributedConfig = DistributedConfig{
	Enabled: false,
	TTL:     30 * time.Second,
}

type StorageConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}
