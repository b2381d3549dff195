package id_gen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGenerator struct{ next int64 }

func (f *fixedGenerator) NextId(ctx context.Context) (int64, error) {
	f.next++
	return f.next, nil
}

func TestNextId_Default(t *testing.T) {
	ctx := context.Background()
	a, err := NextId(ctx)
	if err != nil {
		// sonyflake derives the machine id from a private IPv4 address
		t.Skipf("sonyflake unavailable: %v", err)
	}
	b, err := NextId(ctx)
	require.NoError(t, err)
	assert.Greater(t, b, a)
}

func TestNextId_Override(t *testing.T) {
	SetGenerator(&fixedGenerator{})
	defer SetGenerator(nil)

	id, err := NextId(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
