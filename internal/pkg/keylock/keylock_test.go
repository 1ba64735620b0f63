package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	l := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("player:42|pattern:7")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, counter)
}

func TestKeyLockReacquire(t *testing.T) {
	l := New()

	unlock := l.Lock("a")
	unlock()

	// the shard must be free again after release
	unlock = l.Lock("a")
	unlock()
}
