package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeoliero/iou/infra/config"
	"github.com/mbeoliero/iou/pkg/lazy"
)

func TestConn_Deferred(t *testing.T) {
	c := New(config.RpcConfig{Endpoint: "127.0.0.1:9090"})
	assert.Equal(t, "pending", c.String())

	conn, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", conn.Target())
	assert.Equal(t, "initialized", c.String())

	require.NoError(t, c.Close())
	assert.Equal(t, "consumed", c.String())
}

func TestConn_EmptyEndpoint(t *testing.T) {
	c := New(config.RpcConfig{})
	assert.ErrorIs(t, c.Force(), ErrEmptyEndpoint)

	_, err := c.Get()
	assert.ErrorIs(t, err, lazy.ErrCorruptedState)
}
