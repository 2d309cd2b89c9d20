package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureCreatesFreshContext(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("a")
	assert.False(t, found)

	session := repo.Ensure("a")
	assert.NotNil(t, session)
	assert.Empty(t, session.Context)

	stored, found := repo.Get("a")
	assert.True(t, found)
	assert.Same(t, session, stored)
}

func TestEnsureIsIdempotent(t *testing.T) {
	repo := NewSessionRepository()

	first := repo.Ensure("a")
	first.Context["last_intent"] = "greeting"

	second := repo.Ensure("a")
	assert.Same(t, first, second)
	assert.Equal(t, "greeting", second.Context["last_intent"])
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.Ensure("a")
	b := repo.Ensure("b")
	assert.NotSame(t, a, b)
}

func TestEnsureConcurrentWriters(t *testing.T) {
	repo := NewSessionRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Ensure("shared")
		}()
	}
	wg.Wait()

	_, found := repo.Get("shared")
	assert.True(t, found)
}
