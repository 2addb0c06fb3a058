package storage

import (
	"net"
	"net/url"
	"objectviewer/internal/config"
	"strconv"
)

func GetConnectionStringFromConfig(cfg *config.StorageConfig) string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}

	if cfg.Username != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.Username, cfg.Password)
		} else {
			u.User = url.User(cfg.Username)
		}
	}

	return u.String()
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultRecentEventLimit
	}
	if limit > maxRecentEventLimit {
		return maxRecentEventLimit
	}
	return limit
}
