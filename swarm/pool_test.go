package swarm

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/agentswarm/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gaugeAgent tracks its peak concurrent invocations.
type gaugeAgent struct {
	current atomic.Int32
	peak    atomic.Int32
}

func (g *gaugeAgent) Name() string    { return "gauge" }
func (g *gaugeAgent) Role() core.Role { return core.RoleResearcher }

func (g *gaugeAgent) Invoke(_ context.Context, task core.Task) (core.Artifact, error) {
	now := g.current.Add(1)
	defer g.current.Add(-1)

	for {
		peak := g.peak.Load()
		if now <= peak || g.peak.CompareAndSwap(peak, now) {
			break
		}
	}

	time.Sleep(20 * time.Millisecond)

	return core.NewArtifact(core.RoleResearcher, task.Round, "ok"), nil
}

func TestWorkerPool_BoundsConcurrency(t *testing.T) {
	pool := NewWorkerPool(2)
	assert.Equal(t, 2, pool.Capacity())

	ag := &gaugeAgent{}
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pool.Invoke(context.Background(), ag, core.NewTask(core.RoleResearcher, 0, "q"), time.Second)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, ag.peak.Load(), int32(2))
}

// sleeperAgent ignores its context to simulate a stuck external call.
type sleeperAgent struct{ d time.Duration }

func (s *sleeperAgent) Name() string    { return "sleeper" }
func (s *sleeperAgent) Role() core.Role { return core.RoleSummarizer }

func (s *sleeperAgent) Invoke(_ context.Context, task core.Task) (core.Artifact, error) {
	time.Sleep(s.d)
	return core.NewArtifact(core.RoleSummarizer, task.Round, "late"), nil
}

func TestWorkerPool_CallTimeoutIsRetryable(t *testing.T) {
	pool := NewWorkerPool(1)
	ag := &sleeperAgent{d: 200 * time.Millisecond}

	_, err := pool.Invoke(context.Background(), ag, core.NewTask(core.RoleSummarizer, 0, "q"), 10*time.Millisecond)
	require.Error(t, err)

	var ae *core.AgentError
	require.ErrorAs(t, err, &ae)
	assert.True(t, ae.Retryable)
	assert.Equal(t, core.RoleSummarizer, ae.Role)
}

func TestWorkerPool_RunDeadlineIsNotRetryable(t *testing.T) {
	pool := NewWorkerPool(1)
	ag := &sleeperAgent{d: 200 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := pool.Invoke(ctx, ag, core.NewTask(core.RoleSummarizer, 0, "q"), time.Second)
	require.Error(t, err)
	assert.False(t, core.IsRetryable(err))
}

func TestWorkerPool_CancelledBeforeDispatch(t *testing.T) {
	pool := NewWorkerPool(1)
	// occupy the single slot
	pool.sem <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Invoke(ctx, &sleeperAgent{}, core.NewTask(core.RoleSummarizer, 0, "q"), time.Second)
	require.Error(t, err)
	assert.False(t, core.IsRetryable(err))
}
