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

package models

// TLSConfig holds certificate paths for mTLS connections.
type TLSConfig struct {
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
	CAFile   string `json:"ca_file,omitempty"`
}

// SecurityConfig configures transport security for NATS connectivity.
type SecurityConfig struct {
	Mode       string    `json:"mode"`
	CertDir    string    `json:"cert_dir,omitempty"`
	ServerName string    `json:"server_name,omitempty"`
	TLS        TLSConfig `json:"tls"`
}

// JournaldConfig configures the journal daemon socket target.
type JournaldConfig struct {
	// SocketPath is the Unix datagram socket journald listens on. It
	// should be an absolute path.
	SocketPath string `json:"socket_path,omitempty"`

	// MaxDatagramSize bounds one encoded record; records that encode
	// larger are dropped rather than truncated.
	MaxDatagramSize int `json:"max_datagram_size,omitempty"`
}

// AckConfig controls when an input message is acknowledged. When enabled,
// messages are acknowledged only after the journal daemon accepted the
// datagram; transient delivery failures are left for redelivery. When
// disabled, messages are acknowledged regardless of delivery outcome.
type AckConfig struct {
	Enabled bool `json:"enabled"`
}
