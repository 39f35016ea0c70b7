package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zini/nella/internal/cli"
	"github.com/zini/nella/internal/iocli"
	"github.com/zini/nella/pkg/nella"
	"github.com/zini/nella/pkg/tokencache"
	"github.com/zini/nella/pkg/tokencache/boltdb"
	"github.com/zini/nella/pkg/tokencache/file"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	baseURL := flag.String("base-url", nella.DefaultBaseURL, "Service URL")
	lang := flag.String("lang", nella.DefaultLanguage, "ISO 639-1 language code")
	cacheType := flag.String("cache", "file", "Token cache backend: file or bolt")
	cacheDB := flag.String("cache-db", "nella-cache.db", "Path to the BoltDB token cache")
	rawOutput := flag.Bool("raw", false, "Print raw JSON payloads")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cache, closeCache, err := openCache(ctx, *cacheType, *cacheDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open token cache: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Error("failed to close token cache", "error", err)
		}
	}()

	client := nella.NewClient(cache,
		nella.WithBaseURL(*baseURL),
		nella.WithLogger(logger),
	)
	if err := client.SetLanguage(*lang); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := cli.New(client, cache, iocli.NewStdio(), *rawOutput)

	if err := run(ctx, app, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *cli.Cli, command string, args []string) error {
	switch command {
	case "login":
		return app.RunLogin(ctx)
	case "logout":
		return app.RunLogout(ctx)
	case "status":
		return app.RunStatus(ctx)
	case "user":
		return app.RunUser(ctx)
	case "cards":
		return app.RunCards(ctx)
	case "card":
		if len(args) < 1 {
			return fmt.Errorf("usage: nella card NUMBER")
		}
		return app.RunCard(ctx, args[0])
	case "products":
		if len(args) < 1 {
			return fmt.Errorf("usage: nella products CARD_ID")
		}
		return app.RunProducts(ctx, args[0])
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// openCache builds the token cache backend selected on the command line.
// The bolt backend is encrypted when NELLA_CACHE_PASSPHRASE is set.
func openCache(ctx context.Context, cacheType, dbPath string) (tokencache.Store, func() error, error) {
	switch cacheType {
	case "file":
		return file.New(), func() error { return nil }, nil
	case "bolt":
		passphrase := os.Getenv("NELLA_CACHE_PASSPHRASE")
		if passphrase != "" {
			store, err := boltdb.NewEncrypted(ctx, dbPath, passphrase)
			if err != nil {
				return nil, nil, err
			}
			return store, store.Close, nil
		}
		store, err := boltdb.New(ctx, dbPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend: %s", cacheType)
	}
}

func printVersion() {
	fmt.Printf("Nella Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
