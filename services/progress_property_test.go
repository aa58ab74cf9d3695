// Property-based tests for the session progress tracker.
package services

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/heartwired/valentine_api/shared"
)

// TestProgressIdempotenceProperty: for any sequence of MarkComplete calls,
// the completed set equals the set of distinct game ids marked, regardless
// of repetition or order.
func TestProgressIdempotenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc := newTestProgressService()
		ctx := context.Background()

		numOps := rapid.IntRange(1, 40).Draw(t, "numOps")
		expected := make(map[string]bool)

		for i := 0; i < numOps; i++ {
			gameID := rapid.SampledFrom(shared.AllGameIDs).Draw(t, "gameID")
			if err := svc.MarkComplete(ctx, "session", gameID); err != nil {
				t.Fatalf("MarkComplete failed: %v", err)
			}
			expected[gameID] = true
		}

		if got := svc.CompletedCount(ctx, "session"); got != len(expected) {
			t.Fatalf("completed count = %d, want %d", got, len(expected))
		}
		for gameID := range expected {
			if !svc.IsComplete(ctx, "session", gameID) {
				t.Fatalf("game %s should be complete", gameID)
			}
		}
	})
}

// TestProgressEpochMonotoneProperty: for any sequence of recorded epochs,
// LastEpoch equals the maximum recorded so far.
func TestProgressEpochMonotoneProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc := newTestProgressService()
		ctx := context.Background()

		gameID := rapid.SampledFrom(shared.AllGameIDs).Draw(t, "gameID")
		numOps := rapid.IntRange(1, 30).Draw(t, "numOps")

		max := -1
		for i := 0; i < numOps; i++ {
			epoch := rapid.IntRange(0, 100).Draw(t, "epoch")
			if err := svc.RecordEpoch(ctx, "session", gameID, epoch); err != nil {
				t.Fatalf("RecordEpoch failed: %v", err)
			}
			if epoch > max {
				max = epoch
			}
			if got := svc.LastEpoch(ctx, "session", gameID); got != max {
				t.Fatalf("LastEpoch = %d, want %d", got, max)
			}
		}
	})
}

// TestProgressRoundTripProperty: saving and reloading a record through the
// store never loses completed games.
func TestProgressRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := NewMemoryProgressStore()
		svc := &ProgressService{}
		svc.SetStore(store)
		ctx := context.Background()

		marked := rapid.SliceOfDistinct(
			rapid.SampledFrom(shared.AllGameIDs),
			func(s string) string { return s },
		).Draw(t, "marked")

		for _, gameID := range marked {
			if err := svc.MarkComplete(ctx, "session", gameID); err != nil {
				t.Fatalf("MarkComplete failed: %v", err)
			}
		}

		// A fresh service over the same store sees the same set.
		reloaded := &ProgressService{}
		reloaded.SetStore(store)
		for _, gameID := range marked {
			if !reloaded.IsComplete(ctx, "session", gameID) {
				t.Fatalf("game %s lost across reload", gameID)
			}
		}
	})
}
