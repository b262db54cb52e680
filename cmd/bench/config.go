package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

const (
	defaultN       = 20
	defaultCPU     = false
	defaultWorkers = 0
)

// config defines the configuration options for bench.
type config struct {
	N       uint `short:"n" description:"number of inputs to convert (2^n)"`
	CPU     bool `short:"c" description:"whether to enable CPU profiling"`
	Workers int  `short:"w" description:"maximum number of concurrent conversions (0 for no limit)"`
	Cache   int  `long:"cache" description:"conversion cache size (0 disables the cache)"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, error) {
	// Default config.
	cfg := config{
		N:       defaultN,
		CPU:     defaultCPU,
		Workers: defaultWorkers,
	}

	// Parse command line options.
	if _, err := flags.Parse(&cfg); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		} else {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		return nil, err
	}

	return &cfg, nil
}
