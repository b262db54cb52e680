package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spacemeshos/radix/config"
	"github.com/spacemeshos/radix/history"
	"github.com/spacemeshos/radix/logging"
	"github.com/spacemeshos/radix/service"
	"github.com/spacemeshos/radix/shell"
)

// Radix binary version.
// It should be passed during the build with '-ldflags "-X main.version="'.
var version = "unknown"

// radixMain is the true entry point for radix. This function is required since
// defers created in the top-level scope of a main method aren't executed if
// os.Exit() is called.
func radixMain() error {
	var err error
	// Start with a default Config with sane settings
	cfg := config.DefaultConfig()
	// Pre-parse the command line to check for an alternative Config file
	cfg, _, err = config.ParseFlags(cfg, os.Args[1:])
	if err != nil {
		return err
	}
	// Stderr-only logger until the config file is loaded.
	bootLevel := zap.WarnLevel
	if cfg.DebugLog {
		bootLevel = zap.DebugLevel
	}
	bootCtx := logging.NewContext(context.Background(), logging.New(bootLevel, logging.FileConfig{}, cfg.JSONLog))
	// Load configuration file overwriting defaults with any specified options
	cfg, err = config.ReadConfigFile(bootCtx, cfg)
	if err != nil {
		return err
	}
	// Parse the command line options again to ensure they take precedence.
	cfg, args, err := config.ParseFlags(cfg, os.Args[1:])
	if err != nil {
		return err
	}
	cfg, err = config.SetupConfig(cfg)
	if err != nil {
		return err
	}

	// Initialize logging
	logLevel := zap.WarnLevel
	if cfg.DebugLog {
		logLevel = zap.DebugLevel
	}
	logger := logging.New(logLevel, cfg.LogFile(), cfg.JSONLog)
	defer logger.Sync()
	ctx := logging.NewContext(context.Background(), logger)
	logger.Sugar().Debugf("version: %s, dir: %v, dbdir: %v", version, cfg.RadixDir, cfg.DbDir)

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			logger.With(zap.Error(err)).Error("could not create CPU profile")
		} else {
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				logger.With(zap.Error(err)).Error("could not start CPU profile")
			}
			defer pprof.StopCPUProfile()
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if cfg.MetricsPort != nil {
		shutdown := serveMetrics(ctx, *cfg.MetricsPort)
		defer shutdown()
	}

	svcOpts := []service.OptionFunc{service.WithConfig(cfg.Service)}
	if cfg.Service.History || cfg.ShowHistory {
		db, err := history.Open(cfg.DbDir)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer db.Close()
		if cfg.ShowHistory {
			return printHistory(ctx, db)
		}
		svcOpts = append(svcOpts, service.WithHistory(db))
	}

	svc, err := service.New(ctx, svcOpts...)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	if len(args) > 0 {
		return convertArgs(ctx, svc, args, cfg.Shell.Compare)
	}
	return shell.New(svc, os.Stdin, os.Stdout, cfg.Shell).Run(ctx)
}

func convertArgs(ctx context.Context, svc *service.Service, args []string, compare bool) error {
	results, err := svc.ConvertBatch(ctx, args)
	for i, res := range results {
		if res == nil {
			continue
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("Input: %s\n", args[i])
		shell.Print(os.Stdout, res, compare)
	}
	return err
}

func printHistory(ctx context.Context, db *history.Database) error {
	records, err := db.List(ctx)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}
	for _, r := range records {
		res := r.Result()
		fmt.Printf("%s%c\tseen %d times, last %s\n",
			res.In(res.System),
			res.System.Suffix(),
			r.Count,
			time.Unix(0, r.LastSeen).Format(time.RFC3339),
		)
	}
	return nil
}

func serveMetrics(ctx context.Context, port uint16) (shutdown func()) {
	logger := logging.FromContext(ctx)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(int(port))),
		Handler:           mux,
		ReadHeaderTimeout: time.Second * 5,
	}
	go func() {
		logger.Sugar().Infof("metrics server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Sugar().Errorf("failed to shutdown metrics server: %s", err)
		}
	}
}

func main() {
	// Call the "real" main in a nested manner so the defers will properly
	// be executed in the case of a graceful shutdown.
	if err := radixMain(); err != nil {
		// If it's the flag utility error don't print it,
		// because it was already printed.
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
