package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	sess := &Session{ID: "abc", Date: "2026-01-15"}
	require.NoError(t, m.Save(ctx, sess))

	got, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	sess.Won = true
	require.NoError(t, m.Save(ctx, sess))
	got, err = m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, got.Won)
	assert.True(t, got.Finished())
}
