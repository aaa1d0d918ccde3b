package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/portal/internal/state"
)

func TestStore_DispatchAppliesBurst(t *testing.T) {
	t.Parallel()

	s := New(state.Seed())
	s.Dispatch(
		state.AddToCart{ProductID: "prod_1", Quantity: 2},
		state.AddToCart{ProductID: "prod_2", Quantity: 1},
	)

	snap := s.View()
	assert.Equal(t, 2, snap.Cart["prod_1"])
	assert.Equal(t, 1, snap.Cart["prod_2"])
}

func TestStore_CommitErrorLeavesSnapshotUnchanged(t *testing.T) {
	t.Parallel()

	s := New(state.Seed())
	before := s.View()

	err := s.Commit(func(state.Snapshot) ([]state.Action, error) {
		return []state.Action{state.ClearCart{}}, errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, before, s.View())
}

func TestStore_CommitValidatesUnderTheLock(t *testing.T) {
	t.Parallel()

	// Two concurrent single-unit checkouts against one unit of stock:
	// exactly one may pass validation, however they interleave.
	seed := state.Seed()
	seed = state.Reduce(seed, state.UpdateStock{ProductID: "prod_3", Quantity: 7}) // 8 -> 1
	s := New(seed)

	buy := func() error {
		return s.Commit(func(snap state.Snapshot) ([]state.Action, error) {
			p, _ := state.ProductByID(snap, "prod_3")
			if p.Stock < 1 {
				return nil, errors.New("insufficient stock")
			}
			return []state.Action{state.UpdateStock{ProductID: "prod_3", Quantity: 1}}, nil
		})
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = buy()
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
		}
	}
	require.Equal(t, 1, failures)

	p, _ := state.ProductByID(s.View(), "prod_3")
	assert.Equal(t, 0, p.Stock)
}

func TestStore_SubscribersSeeOldAndNew(t *testing.T) {
	t.Parallel()

	s := New(state.Seed())

	var mu sync.Mutex
	var calls int
	s.Subscribe(func(old, next state.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		assert.Empty(t, old.Cart)
		assert.Equal(t, 3, next.Cart["prod_1"])
	})

	s.Dispatch(state.AddToCart{ProductID: "prod_1", Quantity: 3})

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, calls)
}

func TestStore_EmptyBurstDoesNotNotify(t *testing.T) {
	t.Parallel()

	s := New(state.Seed())
	notified := false
	s.Subscribe(func(state.Snapshot, state.Snapshot) { notified = true })

	err := s.Commit(func(state.Snapshot) ([]state.Action, error) { return nil, nil })

	require.NoError(t, err)
	assert.False(t, notified)
}
