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

package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
)

func TestNewWithDefaults(t *testing.T) {
	l, err := New(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, l)

	// Safe to log through the whole surface.
	l.Info().Str("k", "v").Msg("hello")
	l.WithComponent("test").Debug().Msg("scoped")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(context.Background(), &Config{Level: "chatty"})
	require.Error(t, err)
}

func TestNewOTelWriterDisabled(t *testing.T) {
	_, err := NewOTelWriter(context.Background(), OTelConfig{})
	require.ErrorIs(t, err, ErrOTelLoggingDisabled)

	_, err = NewOTelWriter(context.Background(), OTelConfig{Enabled: true})
	require.ErrorIs(t, err, ErrOTelEndpointRequired)
}

func TestMapZerologLevel(t *testing.T) {
	assert.Equal(t, log.SeverityError, mapZerologLevel("error"))
	assert.Equal(t, log.SeverityWarn, mapZerologLevel("warning"))
	assert.Equal(t, log.SeverityFatal, mapZerologLevel("panic"))
	assert.Equal(t, log.SeverityInfo, mapZerologLevel("unknown-level"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "stdout", cfg.Output)
	assert.False(t, cfg.OTel.Enabled)
}
