package generic

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeoliero/iou/pkg/lazy"
)

func TestOnce_ConcurrentCallersShareOneResult(t *testing.T) {
	var calls atomic.Int32
	get := Once(func() int {
		calls.Add(1)
		return 42
	})
	assert.Equal(t, int32(0), calls.Load())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 42, get())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestOnce_PanicIsSticky(t *testing.T) {
	get := Once(func() int { panic("nope") })

	assert.PanicsWithValue(t, "nope", func() { get() })
	assert.PanicsWithError(t, "lazy: read: corrupted state", func() { get() })
}

func TestOnceErr(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	get := OnceErr(func() (string, error) {
		calls++
		return "", boom
	})

	_, err := get()
	require.ErrorIs(t, err, boom)

	_, err = get()
	assert.ErrorIs(t, err, lazy.ErrCorruptedState)
	assert.Equal(t, 1, calls)
}
