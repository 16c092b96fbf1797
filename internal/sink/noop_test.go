package sink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNoopAlwaysSucceeds(t *testing.T) {
	n := NewNoop("postgres", zap.NewNop())
	assert.Equal(t, "postgres", n.Name())

	for i := 0; i < 10; i++ {
		assert.NoError(t, n.Write(context.Background(), testRecord()))
	}
}
