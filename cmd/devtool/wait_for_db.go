package main

import (
	"context"
	"fmt"
	"time"

	"github.com/journey-app/journey/internal/config"
	"github.com/journey-app/journey/internal/database"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < dbWaitRetries; i++ {
		lastErr = ping(cfg.GetDBConnString())
		if lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		PrintInfo("Database not ready (%d/%d): %v", i+1, dbWaitRetries, lastErr)
		time.Sleep(dbWaitInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", dbWaitRetries, lastErr)
}

func ping(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbWaitInterval)
	defer cancel()

	// NewPool pings before returning
	pool, err := database.NewPool(ctx, connString, 1, time.Minute, time.Minute)
	if err != nil {
		return err
	}
	pool.Close()
	return nil
}
