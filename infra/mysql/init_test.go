package mysql

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeoliero/iou/infra/config"
	"github.com/mbeoliero/iou/pkg/lazy"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.MySqlConfig{
		Host:     "db.local",
		Port:     3306,
		User:     "root",
		Password: "secret",
		Database: "iou",
	})
	assert.Equal(t, "root:secret@tcp(db.local:3306)/iou?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s", dsn)
}

func TestInit_NoConnectionUntilUsed(t *testing.T) {
	config.SetConfig(&config.Config{MySql: config.MySqlConfig{Host: "127.0.0.1", Port: 3306}})
	defer config.SetConfig(nil)

	d := Init()
	assert.Equal(t, "pending", d.String())
	assert.NoError(t, Close())
	assert.Equal(t, "pending", d.String())
}

func TestNew_RefusedConnectionCorrupts(t *testing.T) {
	// grab a free port and release it so the dial is refused
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	d := New(config.MySqlConfig{Host: "127.0.0.1", Port: port, User: "root", Database: "iou"})
	err = d.Force()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect mysql")
	assert.Equal(t, "corrupted", d.String())

	_, err = d.Get()
	assert.ErrorIs(t, err, lazy.ErrCorruptedState)
}
