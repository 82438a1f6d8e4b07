package directory_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slidecraft/sessionkit/core/directory"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) GroupsOf(ctx context.Context, principalID string) ([]string, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestMembershipCache_GroupsOf(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns directory result", func(t *testing.T) {
		client := &MockClient{}
		client.On("GroupsOf", mock.Anything, "alice").Return([]string{"eng", "design"}, nil).Once()

		cache := directory.NewMembershipCache(client)

		assert.Equal(t, []string{"eng", "design"}, cache.GroupsOf(ctx, "alice"))
		client.AssertExpectations(t)
	})

	t.Run("caches within the TTL", func(t *testing.T) {
		client := &MockClient{}
		client.On("GroupsOf", mock.Anything, "alice").Return([]string{"eng"}, nil).Once()

		cache := directory.NewMembershipCache(client, directory.WithTTL(time.Hour))

		for i := 0; i < 5; i++ {
			assert.Equal(t, []string{"eng"}, cache.GroupsOf(ctx, "alice"))
		}
		client.AssertExpectations(t)

		stats := cache.Stats()
		assert.Equal(t, int64(1), stats.Lookups)
		assert.Equal(t, int64(4), stats.Hits)
	})

	t.Run("expired entry triggers a fresh lookup", func(t *testing.T) {
		client := &MockClient{}
		client.On("GroupsOf", mock.Anything, "alice").Return([]string{"eng"}, nil).Twice()

		cache := directory.NewMembershipCache(client, directory.WithTTL(10*time.Millisecond))

		assert.Equal(t, []string{"eng"}, cache.GroupsOf(ctx, "alice"))
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, []string{"eng"}, cache.GroupsOf(ctx, "alice"))
		client.AssertExpectations(t)
	})

	t.Run("fails closed on directory error", func(t *testing.T) {
		client := &MockClient{}
		client.On("GroupsOf", mock.Anything, "alice").Return(nil, errors.New("directory unreachable")).Once()

		cache := directory.NewMembershipCache(client, directory.WithTTL(time.Hour))

		assert.Empty(t, cache.GroupsOf(ctx, "alice"))

		// The failure is cached too: a struggling directory is not hammered
		// once per permission check.
		assert.Empty(t, cache.GroupsOf(ctx, "alice"))
		client.AssertExpectations(t)

		assert.Equal(t, int64(1), cache.Stats().Failures)
	})

	t.Run("unknown principal resolves to the empty set", func(t *testing.T) {
		client := &MockClient{}
		client.On("GroupsOf", mock.Anything, "ghost").Return([]string{}, nil).Once()

		cache := directory.NewMembershipCache(client)

		assert.Empty(t, cache.GroupsOf(ctx, "ghost"))
	})

	t.Run("empty principal never hits the directory", func(t *testing.T) {
		client := &MockClient{}
		cache := directory.NewMembershipCache(client)

		assert.Empty(t, cache.GroupsOf(ctx, ""))
		client.AssertNotCalled(t, "GroupsOf")
	})

	t.Run("cached groups are immutable", func(t *testing.T) {
		client := &MockClient{}
		client.On("GroupsOf", mock.Anything, "alice").Return([]string{"eng"}, nil).Once()

		cache := directory.NewMembershipCache(client, directory.WithTTL(time.Hour))

		first := cache.GroupsOf(ctx, "alice")
		first[0] = "tampered"

		assert.Equal(t, []string{"eng"}, cache.GroupsOf(ctx, "alice"))
	})
}

func TestMembershipCache_Invalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client := &MockClient{}
	client.On("GroupsOf", mock.Anything, "alice").Return([]string{"eng"}, nil).Twice()

	cache := directory.NewMembershipCache(client, directory.WithTTL(time.Hour))

	require.Equal(t, []string{"eng"}, cache.GroupsOf(ctx, "alice"))
	cache.Invalidate("alice")
	require.Equal(t, []string{"eng"}, cache.GroupsOf(ctx, "alice"))

	client.AssertExpectations(t)
}

func TestMembershipCache_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var calls atomic.Int64
	client := directory.ClientFunc(func(_ context.Context, principalID string) ([]string, error) {
		calls.Add(1)
		return []string{"group-of-" + principalID}, nil
	})

	cache := directory.NewMembershipCache(client, directory.WithTTL(time.Hour))

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(idx int) {
			defer wg.Done()

			principal := []string{"alice", "bob", "carol"}[idx%3]
			groups := cache.GroupsOf(ctx, principal)
			assert.Equal(t, []string{"group-of-" + principal}, groups)
		}(i)
	}

	wg.Wait()

	// Concurrent misses for the same principal may each hit the directory,
	// but the count stays bounded by the goroutines, and steady state is
	// fully cached.
	assert.LessOrEqual(t, calls.Load(), int64(numGoroutines))
	before := calls.Load()
	cache.GroupsOf(ctx, "alice")
	assert.Equal(t, before, calls.Load())
}
