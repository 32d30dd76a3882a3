package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/kstage/kstage-go/internal/common/valkeyx"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

func newTestStore(t *testing.T, ttl time.Duration) (*PopularStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := valkeyx.NewClient(valkeyx.Config{
		Addr:         mr.Addr(),
		DisableCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { valkeyx.Close(client) })

	return NewPopularStore(client, ttl), mr
}

func TestPopularStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Minute)

	_, found, err := store.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected cache miss on empty store")
	}

	artists := []repository.Artist{
		{ID: 1, Rank: 1, ArtistNameEN: "NewJeans", IsActive: true},
		{ID: 2, Rank: 2, ArtistNameEN: "IVE", IsActive: true},
	}
	if err := store.Set(ctx, artists); err != nil {
		t.Fatal(err)
	}

	cached, found, err := store.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected cache hit after set")
	}
	if len(cached) != 2 || cached[0].ArtistNameEN != "NewJeans" || cached[1].Rank != 2 {
		t.Fatalf("unexpected cached payload: %+v", cached)
	}
}

func TestPopularStoreInvalidate(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Minute)

	if err := store.Set(ctx, []repository.Artist{{ID: 1, Rank: 1, ArtistNameEN: "aespa"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}

	_, found, err := store.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected cache miss after invalidate")
	}
}

func TestPopularStoreTTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, 30*time.Second)

	if err := store.Set(ctx, []repository.Artist{{ID: 1, Rank: 1, ArtistNameEN: "ITZY"}}); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(time.Minute)

	_, found, err := store.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected cache miss after ttl expiry")
	}
}

func TestPopularStoreNilClient(t *testing.T) {
	ctx := context.Background()
	var store *PopularStore

	// nil 스토어는 캐시 비활성화와 동일하게 동작한다.
	if _, found, err := store.Get(ctx); err != nil || found {
		t.Fatalf("nil store get: found=%v err=%v", found, err)
	}
	if err := store.Set(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if err := store.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}
}
