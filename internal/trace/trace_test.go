package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopByDefault(t *testing.T) {
	assert.NotNil(t, L())
	// Safe to log with tracing disabled.
	L().Info("noop")
}
