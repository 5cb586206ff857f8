package artifact

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/agentswarm/core"
)

// Interface compliance (compile-time assertion)
var _ core.ArtifactStore = (*InMemoryStore)(nil)

func TestInMemoryStore_PutOnce(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Put(core.NewArtifact(core.RoleResearcher, 0, "r0")); err != nil {
		t.Fatalf("put: %v", err)
	}

	err := store.Put(core.NewArtifact(core.RoleResearcher, 0, "overwrite attempt"))
	if err == nil {
		t.Fatalf("expected duplicate error for occupied key")
	}

	got, ok := store.Get(core.RoleResearcher, 0)
	if !ok || got.Content != "r0" {
		t.Fatalf("expected original artifact to survive, got %+v ok=%v", got, ok)
	}
}

func TestInMemoryStore_LatestSkipsFailed(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Put(core.NewArtifact(core.RoleSummarizer, 0, "s0")); err != nil {
		t.Fatal(err)
	}

	degraded := core.NewArtifact(core.RoleSummarizer, 1, "s1 degraded")
	degraded.Status = core.StatusDegraded
	if err := store.Put(degraded); err != nil {
		t.Fatal(err)
	}

	failed := core.NewArtifact(core.RoleSummarizer, 2, "s2 placeholder")
	failed.Status = core.StatusFailed
	if err := store.Put(failed); err != nil {
		t.Fatal(err)
	}

	latest, ok := store.Latest(core.RoleSummarizer)
	if !ok {
		t.Fatalf("expected a usable artifact")
	}
	if latest.Round != 1 || latest.Content != "s1 degraded" {
		t.Fatalf("expected round 1 degraded artifact, got %+v", latest)
	}

	if _, ok := store.Latest(core.RoleReflector); ok {
		t.Fatalf("expected absent for role with no artifacts")
	}
}

func TestInMemoryStore_ListPreservesInsertionOrder(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Put(core.NewArtifact(core.RoleResearcher, 0, "first")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(core.NewArtifact(core.RoleSummarizer, 0, "second")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(core.NewArtifact(core.RoleResearcher, 1, "third")); err != nil {
		t.Fatal(err)
	}

	all := store.List()
	if len(all) != 3 {
		t.Fatalf("expected 3 artifacts, got %d", len(all))
	}
	for i, want := range []string{"first", "second", "third"} {
		if all[i].Content != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, all[i].Content)
		}
	}
}

func TestInMemoryStore_Concurrency(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(core.NewArtifact(core.Role(i%4), i, fmt.Sprintf("a%d", i)))
			_, _ = store.Latest(core.Role(i % 4))
			_ = store.List()
		}()
	}
	wg.Wait()

	if len(store.List()) != 100 {
		t.Fatalf("expected 100 artifacts, got %d", len(store.List()))
	}
}
