// Package dedupe provides the shared singleflight group and per-key locks
// used to keep concurrent battle runs for the same hero from racing. Identical
// requests collapse into one battle; different requests for the same hero
// run one after another.
package dedupe

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// StageGroup deduplicates stage runs keyed by keys.BattleKey.
var StageGroup singleflight.Group

// HeroLocks serializes state changes of a hero keyed by its public id.
var HeroLocks KeyedMutex

// KeyedMutex hands out one mutex per key and forgets keys nobody holds.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// Lock blocks until key is free and returns the matching unlock function.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*keyedLock)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// Len reports how many keys are currently held or awaited.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
