package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	calls, err := run(&buf, "hello", "l")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		`read: ["e","h","l","o"]`,
		`first reader: ["e","h","o"]`,
		`second reader: ["e","h","o"]`,
		`consumed: ["e","h","o"]`,
	}, lines)
}

func TestRun_NothingDropped(t *testing.T) {
	var buf bytes.Buffer
	calls, err := run(&buf, "abba", "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), `read: ["a","b"]`)
	assert.Contains(t, buf.String(), `consumed: ["a","b"]`)
}

func TestRun_EmptySeed(t *testing.T) {
	var buf bytes.Buffer
	calls, err := run(&buf, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "consumed: []")
}

func TestArgs(t *testing.T) {
	_, err := app.Parse([]string{"--seed", "mississippi", "--drop", "s"})
	require.NoError(t, err)
	assert.Equal(t, "mississippi", *seed)
	assert.Equal(t, "s", *drop)
}
