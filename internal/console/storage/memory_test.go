package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RoundTrip(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "company_chats")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Set(ctx, "company_chats", []byte(`{}`)))
	v, err = r.Get(ctx, "company_chats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)
}

func TestMemoryRepository_ValuesAreCopied(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[1] = 'Y'
	again, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryRepository_SeedIfAbsent(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("kept")))

	n, err := r.SeedIfAbsent(ctx, map[string][]byte{"a": []byte("default"), "b": []byte("default")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	a, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), a)

	b, err := r.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("default"), b)
}
