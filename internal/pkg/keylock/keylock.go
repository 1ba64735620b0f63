// Package keylock serializes operations sharing a logical key while leaving
// operations on unrelated keys fully independent. Keys are mapped onto a fixed
// set of mutex shards; a collision only over-serializes, never under-serializes.
package keylock

import (
	"sync"

	"github.com/zeebo/xxh3"
)

const defaultShards = 1024

type KeyLock struct {
	shards []sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{
		shards: make([]sync.Mutex, defaultShards),
	}
}

// Lock acquires the shard owning key and returns its release func.
func (l *KeyLock) Lock(key string) func() {
	m := &l.shards[xxh3.HashString(key)%uint64(len(l.shards))]
	m.Lock()
	return m.Unlock
}
