package config

const (
	// Configuration file paths
	DefaultCatalogDir = "configs/catalogs"
	DefaultLogDir     = "logs"

	// Session cache defaults
	DefaultSessionTTLSeconds   = 1800
	DefaultSessionCacheSize    = 4096
	DefaultSaveIntervalSeconds = 30
)
