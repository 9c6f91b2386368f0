package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/schedulerlock"
)

// lockRowID is the fixed id of the single lock row.
const lockRowID = 1

// LeaderElector maintains the single-row DB lease. Acquisition and renewal
// are single conditional UPDATEs — the row version in the WHERE clause is
// the atomicity, no SELECT FOR UPDATE needed.
type LeaderElector struct {
	client     *ent.Client
	instanceID string
	namespace  string

	heartbeatInterval time.Duration
	leaseDuration     time.Duration

	mu       sync.Mutex
	isLeader bool

	// OnPromote and OnDemote run on the elector goroutine on transitions.
	OnPromote func(ctx context.Context)
	OnDemote  func(ctx context.Context)
}

// NewLeaderElector builds an elector for one instance.
func NewLeaderElector(client *ent.Client, instanceID, namespace string, heartbeatInterval, leaseDuration time.Duration) *LeaderElector {
	return &LeaderElector{
		client:            client,
		instanceID:        instanceID,
		namespace:         namespace,
		heartbeatInterval: heartbeatInterval,
		leaseDuration:     leaseDuration,
	}
}

// IsLeader reports whether this instance currently holds the lease.
func (e *LeaderElector) IsLeader() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isLeader
}

// CurrentLeader returns the leader id recorded in the lock row, or "".
func (e *LeaderElector) CurrentLeader(ctx context.Context) string {
	row, err := e.client.SchedulerLock.Get(ctx, lockRowID)
	if err != nil {
		return ""
	}
	if time.Now().UnixMilli() >= row.ExpiresAt {
		return ""
	}
	return row.LeaderID
}

// Run drives the heartbeat loop until ctx is cancelled, then releases the
// lease if held.
func (e *LeaderElector) Run(ctx context.Context) {
	slog.Info("Leader elector started",
		"instance_id", e.instanceID,
		"heartbeat", e.heartbeatInterval, "lease", e.leaseDuration)

	e.step(ctx)
	ticker := time.NewTicker(e.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.release()
			return
		case <-ticker.C:
			e.step(ctx)
		}
	}
}

// step runs one acquire-or-renew attempt and fires transition callbacks.
func (e *LeaderElector) step(ctx context.Context) {
	acquired := e.tryAcquire(ctx)

	e.mu.Lock()
	was := e.isLeader
	e.isLeader = acquired
	e.mu.Unlock()

	switch {
	case acquired && !was:
		slog.Info("Promoted to scheduler leader", "instance_id", e.instanceID)
		if e.OnPromote != nil {
			e.OnPromote(ctx)
		}
	case !acquired && was:
		slog.Warn("Demoted from scheduler leader", "instance_id", e.instanceID)
		if e.OnDemote != nil {
			e.OnDemote(ctx)
		}
	}
}

// tryAcquire attempts to take or renew the lease. The conditional update
// succeeds when the row is ours or expired; an absent row is inserted, with
// a losing race reported as not-acquired.
func (e *LeaderElector) tryAcquire(ctx context.Context) bool {
	now := time.Now().UnixMilli()
	expiry := now + e.leaseDuration.Milliseconds()

	n, err := e.client.SchedulerLock.Update().
		Where(
			schedulerlock.ID(lockRowID),
			schedulerlock.Or(
				schedulerlock.LeaderID(e.instanceID),
				schedulerlock.ExpiresAtLT(now),
			),
		).
		SetLeaderID(e.instanceID).
		SetLeaderNamespace(e.namespace).
		SetExpiresAt(expiry).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		slog.Error("Leader lease update failed", "error", err)
		return false
	}
	if n > 0 {
		return true
	}

	exists, err := e.client.SchedulerLock.Query().
		Where(schedulerlock.ID(lockRowID)).
		Exist(ctx)
	if err != nil {
		slog.Error("Leader lease check failed", "error", err)
		return false
	}
	if exists {
		// Held by a live peer.
		return false
	}

	err = e.client.SchedulerLock.Create().
		SetID(lockRowID).
		SetLeaderID(e.instanceID).
		SetLeaderNamespace(e.namespace).
		SetAcquiredAt(now).
		SetExpiresAt(expiry).
		SetHeartbeatAt(now).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the insert race.
			return false
		}
		slog.Error("Leader lease insert failed", "error", err)
		return false
	}
	return true
}

// release drops the lease if this instance holds it. Uses a fresh context:
// the caller's is already cancelled during shutdown.
func (e *LeaderElector) release() {
	e.mu.Lock()
	held := e.isLeader
	e.isLeader = false
	e.mu.Unlock()
	if !held {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := e.client.SchedulerLock.Delete().
		Where(schedulerlock.ID(lockRowID), schedulerlock.LeaderID(e.instanceID)).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to release leader lease", "error", err)
		return
	}
	slog.Info("Leader lease released", "instance_id", e.instanceID)
}
