package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"profile-editor/internal/domain"
	"profile-editor/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEditor counts Close calls; other methods are never exercised.
type stubEditor struct {
	domain.ProfileEditor
	closed atomic.Int32
	calls  int
}

func (e *stubEditor) Close() { e.closed.Add(1) }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newRepo(ttl time.Duration) (*memory.SessionRepository, *clock, *[]*stubEditor) {
	var editors []*stubEditor
	repo := memory.NewSessionRepository(func() domain.ProfileEditor {
		e := &stubEditor{}
		editors = append(editors, e)
		return e
	}, ttl)
	c := &clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	repo.SetClock(c.Now)
	return repo, c, &editors
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create isolated sessions", func(t *testing.T) {
		repo, _, editors := newRepo(time.Minute)

		a, err := repo.Create(ctx)
		require.NoError(t, err)
		b, err := repo.Create(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
		assert.Equal(t, 2, repo.Len())

		var got domain.ProfileEditor
		require.NoError(t, repo.WithSession(ctx, b, func(e domain.ProfileEditor) error {
			got = e
			return nil
		}))
		assert.Same(t, (*editors)[1], got)
	})

	t.Run("Should return not found for unknown ids", func(t *testing.T) {
		repo, _, _ := newRepo(time.Minute)
		err := repo.WithSession(ctx, "nope", func(domain.ProfileEditor) error { return nil })
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Should pass through callback errors", func(t *testing.T) {
		repo, _, _ := newRepo(time.Minute)
		id, _ := repo.Create(ctx)
		err := repo.WithSession(ctx, id, func(domain.ProfileEditor) error { return assert.AnError })
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Should expire idle sessions on access", func(t *testing.T) {
		repo, c, editors := newRepo(time.Minute)
		id, _ := repo.Create(ctx)

		c.Advance(59 * time.Second)
		require.NoError(t, repo.WithSession(ctx, id, func(domain.ProfileEditor) error { return nil }))

		// access refreshed the deadline
		c.Advance(59 * time.Second)
		require.NoError(t, repo.WithSession(ctx, id, func(domain.ProfileEditor) error { return nil }))

		c.Advance(61 * time.Second)
		err := repo.WithSession(ctx, id, func(domain.ProfileEditor) error { return nil })
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.Equal(t, 0, repo.Len())
		assert.Equal(t, int32(1), (*editors)[0].closed.Load())
	})

	t.Run("Should evict only idle sessions", func(t *testing.T) {
		repo, c, editors := newRepo(time.Minute)
		_, _ = repo.Create(ctx)
		c.Advance(30 * time.Second)
		fresh, _ := repo.Create(ctx)
		c.Advance(45 * time.Second)

		assert.Equal(t, 1, repo.Evict())
		assert.Equal(t, 1, repo.Len())
		assert.Equal(t, int32(1), (*editors)[0].closed.Load())
		assert.NoError(t, repo.WithSession(ctx, fresh, func(domain.ProfileEditor) error { return nil }))
	})

	t.Run("Should never expire with a zero ttl", func(t *testing.T) {
		repo, c, _ := newRepo(0)
		id, _ := repo.Create(ctx)
		c.Advance(24 * time.Hour)
		assert.Equal(t, 0, repo.Evict())
		assert.NoError(t, repo.WithSession(ctx, id, func(domain.ProfileEditor) error { return nil }))
	})

	t.Run("Should close editors on delete and close all", func(t *testing.T) {
		repo, _, editors := newRepo(time.Minute)
		a, _ := repo.Create(ctx)
		_, _ = repo.Create(ctx)

		require.NoError(t, repo.Delete(ctx, a))
		assert.ErrorIs(t, repo.Delete(ctx, a), domain.ErrSessionNotFound)
		assert.Equal(t, int32(1), (*editors)[0].closed.Load())

		repo.CloseAll()
		assert.Equal(t, 0, repo.Len())
		assert.Equal(t, int32(1), (*editors)[1].closed.Load())
	})

	t.Run("Should honour a cancelled context", func(t *testing.T) {
		repo, _, _ := newRepo(time.Minute)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.Create(cctx)
		assert.ErrorIs(t, err, context.Canceled)
		err = repo.WithSession(cctx, "x", func(domain.ProfileEditor) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSessionRepositorySerialisesAccess(t *testing.T) {
	ctx := context.Background()
	repo, _, editors := newRepo(time.Minute)
	id, _ := repo.Create(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.WithSession(ctx, id, func(e domain.ProfileEditor) error {
				e.(*stubEditor).calls++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, (*editors)[0].calls)
}

func TestStartJanitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := memory.NewSessionRepository(func() domain.ProfileEditor { return &stubEditor{} }, time.Millisecond)
	_, _ = repo.Create(ctx)

	repo.StartJanitor(ctx, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return repo.Len() == 0 }, time.Second, 5*time.Millisecond)
}
