package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := New(level)
		require.NoError(t, err, "level %s", level)
		assert.NotNil(t, log)
	}

	_, err := New("chatty")
	assert.Error(t, err)
}
