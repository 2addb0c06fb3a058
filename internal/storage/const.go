package storage

const (
	defaultRecentEventLimit = 50
	maxRecentEventLimit     = 1000
)
