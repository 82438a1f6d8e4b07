package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidecraft/sessionkit/core/permission"
	"github.com/slidecraft/sessionkit/core/session"
)

// Exercises the full stack under -race: concurrent reads, mutations, ACL
// changes, and a running reaper, all over the same repository.
func TestService_ConcurrentMixedOperations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	repo := session.NewRepository[deck]()
	engine := permission.NewEngine(nil)
	svc, err := session.NewService(
		session.WithRepository(repo),
		session.WithEngine[deck](engine),
		session.WithConfig[deck](
			session.WithTTL(50*time.Millisecond),
			session.WithMaxPerOwner(0),
		),
	)
	require.NoError(t, err)

	reaper := session.NewReaper(repo,
		session.WithReaperConfig[deck](session.Config{
			TTL:          50 * time.Millisecond,
			ReapInterval: 10 * time.Millisecond,
		}),
	)
	reaperCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = reaper.Start(reaperCtx) }()
	defer func() { _ = reaper.Stop() }()

	const (
		numOwners    = 4
		numWorkers   = 8
		opsPerWorker = 50
	)

	seeds := make([]session.Session[deck], numOwners)
	for i := range seeds {
		seeds[i], err = svc.Create(ctx, fmt.Sprintf("owner-%d", i), permission.VisibilityWorkspace)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(worker int) {
			defer wg.Done()

			for op := 0; op < opsPerWorker; op++ {
				seed := seeds[(worker+op)%numOwners]
				owner := seed.OwnerID
				switch op % 5 {
				case 0:
					// Reads keep the seed sessions alive between sweeps;
					// a not-found just means the reaper won that round.
					if _, err := svc.Get(ctx, owner, seed.ID); err != nil {
						assert.ErrorIs(t, err, session.ErrNotFound)
					}
				case 1:
					err := svc.UpdateData(ctx, owner, seed.ID, deck{Slides: op})
					if err != nil {
						assert.ErrorIs(t, err, session.ErrNotFound)
					}
				case 2:
					err := svc.Grant(ctx, owner, seed.ID, permission.Grant{
						Type:        permission.PrincipalUser,
						PrincipalID: fmt.Sprintf("viewer-%d-%d", worker, op),
						Level:       permission.LevelRead,
					})
					if err != nil {
						assert.ErrorIs(t, err, session.ErrNotFound)
					}
				case 3:
					svc.ListAccessible(ctx, owner)
				case 4:
					extra, err := svc.Create(ctx, owner, permission.VisibilityPrivate)
					if assert.NoError(t, err) {
						_ = svc.Delete(ctx, owner, extra.ID)
					}
				}
			}
		}(w)
	}

	wg.Wait()

	// Whatever survived is internally consistent.
	for _, sess := range repo.List() {
		assert.NotEmpty(t, sess.OwnerID)
		assert.True(t, sess.Visibility.Valid())
		for _, g := range sess.ACL {
			assert.NoError(t, g.Validate())
		}
	}
}
