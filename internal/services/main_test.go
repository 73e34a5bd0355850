package services

import (
	"os"
	"testing"

	"github.com/thirdfi/fund-orchestrator/internal/observability/metrics"
)

func TestMain(m *testing.M) {
	// The services under test record Prometheus metrics; register them the
	// same way the binary does. Port 0 binds an ephemeral port so the
	// metrics listener never collides with anything.
	metrics.Init(0)
	os.Exit(m.Run())
}
