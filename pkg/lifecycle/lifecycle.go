/*
 * Copyright 2026 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package lifecycle runs long-lived services with signal-driven shutdown.
package lifecycle

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/carverauto/journalgate/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Service is anything the runner can start and stop.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Run starts svc and blocks until the context is cancelled or SIGINT or
// SIGTERM arrives, then stops it with a bounded shutdown window.
func Run(ctx context.Context, svc Service, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := svc.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to stop service: %w", err)
	}

	return logger.Shutdown()
}

// CreateComponentLogger creates a logger tagged with the component name.
func CreateComponentLogger(ctx context.Context, component string, cfg *logger.Config) (logger.Logger, error) {
	log, err := logger.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return log.WithComponent(component), nil
}
