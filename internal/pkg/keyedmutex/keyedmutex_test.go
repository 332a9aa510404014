//go:build unit

package keyedmutex_test

import (
	"sync"
	"testing"

	"ondc-seller-bridge/internal/pkg/keyedmutex"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	km := keyedmutex.New()

	const goroutines = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			unlock := km.Lock("same")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestLockDistinctKeysDoNotBlock(t *testing.T) {
	km := keyedmutex.New()

	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	<-done // would deadlock if "b" waited on "a"
}
