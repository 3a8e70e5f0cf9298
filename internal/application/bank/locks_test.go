package bank

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountLocks(t *testing.T) {
	t.Run("acquire and release", func(t *testing.T) {
		locks := NewAccountLocks()

		assert.True(t, locks.TryAcquire("ES1"))
		assert.True(t, locks.IsHeld("ES1"))
		assert.False(t, locks.TryAcquire("ES1"))

		locks.Release("ES1")
		assert.False(t, locks.IsHeld("ES1"))
		assert.True(t, locks.TryAcquire("ES1"))
	})

	t.Run("locks are per account", func(t *testing.T) {
		locks := NewAccountLocks()

		assert.True(t, locks.TryAcquire("ES1"))
		assert.True(t, locks.TryAcquire("ES2"))
	})

	t.Run("releasing an unheld lock is harmless", func(t *testing.T) {
		locks := NewAccountLocks()
		locks.Release("ES1")
		assert.True(t, locks.TryAcquire("ES1"))
	})

	t.Run("exactly one concurrent acquirer wins", func(t *testing.T) {
		locks := NewAccountLocks()

		const goroutines = 32
		var wg sync.WaitGroup
		var mu sync.Mutex
		won := 0

		for range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if locks.TryAcquire("ES1") {
					mu.Lock()
					won++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, won)
	})
}
