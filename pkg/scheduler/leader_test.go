package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func TestLeaderElection(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	lease := 200 * time.Millisecond
	a := NewLeaderElector(clientA.Client, "pod-a", "sam", 50*time.Millisecond, lease)
	b := NewLeaderElector(clientB.Client, "pod-b", "sam", 50*time.Millisecond, lease)

	t.Run("first instance acquires", func(t *testing.T) {
		a.step(ctx)
		assert.True(t, a.IsLeader())
		assert.Equal(t, "pod-a", a.CurrentLeader(ctx))
	})

	t.Run("second instance stays follower", func(t *testing.T) {
		b.step(ctx)
		assert.False(t, b.IsLeader())
		assert.Equal(t, "pod-a", b.CurrentLeader(ctx))
	})

	t.Run("renewal keeps the lease", func(t *testing.T) {
		time.Sleep(lease / 2)
		a.step(ctx)
		assert.True(t, a.IsLeader())

		b.step(ctx)
		assert.False(t, b.IsLeader())
	})

	t.Run("follower takes over an expired lease", func(t *testing.T) {
		time.Sleep(lease + 50*time.Millisecond)
		b.step(ctx)
		assert.True(t, b.IsLeader())
		assert.Equal(t, "pod-b", b.CurrentLeader(ctx))

		// The stale leader demotes on its next heartbeat.
		a.step(ctx)
		assert.False(t, a.IsLeader())
	})

	t.Run("release clears the lock row", func(t *testing.T) {
		b.release()
		assert.Equal(t, "", b.CurrentLeader(ctx))

		a.step(ctx)
		assert.True(t, a.IsLeader())
	})
}

func TestLeaderTransitionCallbacks(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	ctx := context.Background()

	var promotions, demotions int
	e := NewLeaderElector(client.Client, "pod-a", "sam", 50*time.Millisecond, 150*time.Millisecond)
	e.OnPromote = func(context.Context) { promotions++ }
	e.OnDemote = func(context.Context) { demotions++ }

	e.step(ctx)
	e.step(ctx)
	assert.Equal(t, 1, promotions, "promotion fires only on the transition")

	// Steal the lease to force a demotion.
	rival := NewLeaderElector(client.Client, "pod-rival", "sam", 50*time.Millisecond, time.Minute)
	time.Sleep(200 * time.Millisecond)
	rival.step(ctx)
	require.True(t, rival.IsLeader())

	e.step(ctx)
	assert.Equal(t, 1, demotions)
	assert.False(t, e.IsLeader())
}

func TestCurrentLeaderIgnoresExpiredLease(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	ctx := context.Background()

	e := NewLeaderElector(client.Client, "pod-a", "sam", 50*time.Millisecond, 100*time.Millisecond)
	e.step(ctx)
	require.Equal(t, "pod-a", e.CurrentLeader(ctx))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, "", e.CurrentLeader(ctx))
}
