package service

import "runtime"

const defaultCacheSize = 1024

//nolint:lll
type Config struct {
	CacheSize    int  `long:"cache-size"    description:"Number of recent conversions kept in memory (0 disables the cache)"`
	History      bool `long:"history"       description:"Record successful conversions in the history database"`
	BatchWorkers int  `long:"batch-workers" description:"Maximum number of concurrent conversions of a batch (0 for no limit)"`
}

func DefaultConfig() Config {
	return Config{
		CacheSize:    defaultCacheSize,
		BatchWorkers: runtime.NumCPU(),
	}
}
