package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunaris/internal/buddy"
)

var flagBuddyAddr string

var buddyCmd = &cobra.Command{
	Use:   "buddy",
	Short: "Serve the companion chat endpoint",
	Long: `Start an HTTP server answering companion chat requests on ` + buddy.ChatPath + `.

Replies are drawn from the built-in line pools for the requesting skin.
Point a client at it with the companion.endpoint config key.

Examples:
  lunaris buddy
  lunaris buddy --addr 127.0.0.1:8787`,
	RunE: runBuddy,
}

func init() {
	buddyCmd.Flags().StringVar(&flagBuddyAddr, "addr", ":8787", "HTTP listen address (host:port)")
}

func runBuddy(_ *cobra.Command, _ []string) error {
	logger, logFile, err := newLogger(true)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	handler := buddy.NewHandler(rand.New(rand.NewSource(seed)), logger)

	srv := &http.Server{
		Addr:              flagBuddyAddr,
		Handler:           handler.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting companion server", "address", flagBuddyAddr, "path", buddy.ChatPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("companion server: %w", err)
		}
		return nil
	case <-done:
	}

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
