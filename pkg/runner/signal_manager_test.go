package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalManagerStopCancelsContext(t *testing.T) {
	sm := NewSignalManager(context.Background())
	require.NoError(t, sm.ctx.Err())

	sm.Stop()
	assert.ErrorIs(t, sm.Context().Err(), context.Canceled)

	// Idempotent.
	sm.Stop()
}

func TestSignalManagerInheritsParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sm := NewSignalManager(parent)
	defer sm.Stop()

	cancel()
	<-sm.Context().Done()
	assert.ErrorIs(t, sm.Context().Err(), context.Canceled)
}
