package testx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunningUnderTest(t *testing.T) {
	assert.True(t, RunningUnderTest())
}
