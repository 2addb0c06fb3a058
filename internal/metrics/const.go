package metrics

const Namespace = "objectviewer"

const (
	RegistryTypeRedis  = "redis"
	RegistryTypeMemory = "memory"
)
