// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Search timings
		{"SearchDebounce", SearchDebounce, 100 * time.Millisecond, 1 * time.Second},
		{"SearchFetchTimeout", SearchFetchTimeout, 5 * time.Second, 60 * time.Second},

		// Gateway timeouts
		{"GatewayRequestTimeout", GatewayRequestTimeout, 1 * time.Second, 30 * time.Second},
		{"GatewayCacheFillTimeout", GatewayCacheFillTimeout, 5 * time.Second, 60 * time.Second},

		// Handler timeouts
		{"RecipeHandlerTimeout", RecipeHandlerTimeout, 10 * time.Second, 60 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestSearchDebounceMatchesUI(t *testing.T) {
	if SearchDebounce != 300*time.Millisecond {
		t.Errorf("SearchDebounce = %v, want 300ms", SearchDebounce)
	}
}

func TestGatewayTimeoutRelationships(t *testing.T) {
	// A cache fill issues one upstream request, so it must outlast it.
	if GatewayRequestTimeout >= GatewayCacheFillTimeout {
		t.Errorf("GatewayRequestTimeout (%v) should be less than GatewayCacheFillTimeout (%v)",
			GatewayRequestTimeout, GatewayCacheFillTimeout)
	}

	if GatewayRequestTimeout >= RecipeHandlerTimeout {
		t.Errorf("GatewayRequestTimeout (%v) should be less than RecipeHandlerTimeout (%v)",
			GatewayRequestTimeout, RecipeHandlerTimeout)
	}
}

func TestLiveKeepaliveRelationships(t *testing.T) {
	if LivePingInterval >= LivePongTimeout {
		t.Errorf("LivePingInterval (%v) should be less than LivePongTimeout (%v)",
			LivePingInterval, LivePongTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	// Read timeout should be shorter than write timeout
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	// Idle timeout should be longer than write timeout
	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}

	if HTTPTLSHandshakeTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	}
}
