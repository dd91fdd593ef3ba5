package traceix

import (
	"fmt"
	"os"
	"runtime"
)

// SDKVersion is the protocol version advertised to the service in the
// User-Agent header.
const SDKVersion = "0.0.0.1"

// moduleVersion tracks releases of this Go module and only appears in the
// telemetry suffix.
const moduleVersion = "0.1.0"

// buildUserAgent renders "Traceix/<sdk-version>", suffixed with OS, CPU
// architecture, and module version unless telemetry is disabled.
func buildUserAgent() string {
	ua := "Traceix/" + SDKVersion
	if telemetryDisabled() {
		return ua
	}
	return fmt.Sprintf("%s (%s-%s v%s)", ua, runtime.GOOS, runtime.GOARCH, moduleVersion)
}

// telemetryDisabled re-reads the environment on every call so the privacy
// opt-out can be toggled without rebuilding the client.
func telemetryDisabled() bool {
	return os.Getenv("TRACEIX_DISABLE_TELEMETRY") == "1"
}
