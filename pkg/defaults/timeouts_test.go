package defaults

import (
	"testing"
	"time"
)

func TestTimeoutRelationships(t *testing.T) {
	// The model call must be able to complete within the server write
	// window, otherwise every slow analysis turns into a truncated
	// response instead of a structured 500.
	if ModelClientTimeout >= ServerWriteTimeout {
		t.Errorf("ModelClientTimeout (%v) must be less than ServerWriteTimeout (%v)",
			ModelClientTimeout, ServerWriteTimeout)
	}

	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) must be less than ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestTimeoutsArePositive(t *testing.T) {
	timeouts := map[string]time.Duration{
		"ServerReadTimeout":       ServerReadTimeout,
		"ServerReadHeaderTimeout": ServerReadHeaderTimeout,
		"ServerWriteTimeout":      ServerWriteTimeout,
		"ServerIdleTimeout":       ServerIdleTimeout,
		"ServerShutdownTimeout":   ServerShutdownTimeout,
		"ModelClientTimeout":      ModelClientTimeout,
		"HTTPConnectTimeout":      HTTPConnectTimeout,
		"HTTPTLSHandshakeTimeout": HTTPTLSHandshakeTimeout,
		"HTTPIdleConnTimeout":     HTTPIdleConnTimeout,
		"HTTPKeepAlive":           HTTPKeepAlive,
	}

	for name, d := range timeouts {
		if d <= 0 {
			t.Errorf("%s must be positive, got %v", name, d)
		}
	}
}
