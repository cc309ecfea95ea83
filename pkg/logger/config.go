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
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultBatchTimeout = 5 * time.Second

// DefaultConfig builds a config from the conventional environment
// variables, falling back to info-level stdout logging.
func DefaultConfig() *Config {
	return &Config{
		Level:      envString("LOG_LEVEL", "info"),
		Debug:      envBool("DEBUG", false),
		Output:     envString("LOG_OUTPUT", "stdout"),
		TimeFormat: os.Getenv("LOG_TIME_FORMAT"),
		OTel:       DefaultOTelConfig(),
	}
}

// DefaultOTelConfig reads the standard OTEL_* environment variables.
func DefaultOTelConfig() OTelConfig {
	batchTimeout := defaultBatchTimeout
	if raw := os.Getenv("OTEL_EXPORTER_OTLP_LOGS_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			batchTimeout = d
		}
	}

	return OTelConfig{
		Enabled:      envBool("OTEL_LOGS_ENABLED", false),
		Endpoint:     os.Getenv("OTEL_EXPORTER_OTLP_LOGS_ENDPOINT"),
		Headers:      parseHeaders(os.Getenv("OTEL_EXPORTER_OTLP_LOGS_HEADERS")),
		ServiceName:  envString("OTEL_SERVICE_NAME", "journalgate"),
		BatchTimeout: Duration(batchTimeout),
		Insecure:     envBool("OTEL_EXPORTER_OTLP_LOGS_INSECURE", false),
	}
}

// parseHeaders splits a W3C-style "k1=v1,k2=v2" header list.
func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)

	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return headers
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := strings.ToLower(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}

	return raw == "yes" || raw == "on"
}
