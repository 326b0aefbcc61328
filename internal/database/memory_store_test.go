package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()
	v, ok, err := s.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestMemoryStoreSaveCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	raw := []byte(`[1,2]`)
	require.NoError(t, s.Save(ctx, map[string][]byte{"a": raw, "b": []byte(`[]`)}))

	raw[1] = '9'
	v, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(v))

	v[1] = '7'
	again, _, _ := s.Load(ctx, "a")
	assert.Equal(t, `[1,2]`, string(again))

	b, ok, err := s.Load(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(b))
}

func TestMemoryStoreHonorsCancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, s.Save(ctx, map[string][]byte{"a": []byte(`1`)}))
	_, _, err := s.Load(ctx, "a")
	assert.Error(t, err)
}
