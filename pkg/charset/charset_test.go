package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Equal(t, []string{"e", "h", "l", "o"}, Of("hello").Sorted())
	assert.Empty(t, Of("").Sorted())
	assert.Equal(t, []string{"a", "é"}, Of("éaé").Sorted())
}

func TestRemove(t *testing.T) {
	s := Of("hello")
	s.Remove("lz")
	assert.Equal(t, []string{"e", "h", "o"}, s.Sorted())
}
