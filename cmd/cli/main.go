/*
Package main is the entry point for the Pariksha Mitra terminal client.

It opens the local session database, restores any persisted login, connects
the API client to the configured server, and runs the interactive command
loop until the user exits or the process is interrupted.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"parikshamitra/internal/client/api"
	"parikshamitra/internal/client/cli"
	"parikshamitra/internal/client/session"
	"parikshamitra/internal/client/storage"
)

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "base URL of the API server")
	dataPath := flag.String("data", defaultDataPath(), "path to the local session database")
	flag.Parse()

	if err := run(*serverURL, *dataPath); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run(serverURL, dataPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(dataPath), 0o700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	kv, err := storage.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open session database: %w", err)
	}
	defer kv.Close()

	sess := session.NewStore(kv)
	if err := sess.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	app := cli.NewApp(api.New(serverURL), sess, os.Stdin, os.Stdout)

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// defaultDataPath places the session database under the user's home
// directory, falling back to the working directory when home is unknown.
func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "parikshamitra-session.db"
	}
	return filepath.Join(home, ".parikshamitra", "session.db")
}
