package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/clothes-shop/clothes/internal/logging"
)

type countingRepo struct {
	Repository
	lists int32
}

func (r *countingRepo) List(ctx context.Context, f Filter) ([]Garment, error) {
	atomic.AddInt32(&r.lists, 1)
	return r.Repository.List(ctx, f)
}

func setupService(t *testing.T) (*Service, *countingRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	repo := &countingRepo{Repository: NewMemoryRepository()}
	svc := NewService(repo, cache, time.Minute, logging.Discard())
	if err := Seed(context.Background(), svc, SampleGarments); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return svc, repo, mr
}

func TestListFilters(t *testing.T) {
	svc, _, _ := setupService(t)

	all, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(SampleGarments) {
		t.Fatalf("expected %d garments, got %d", len(SampleGarments), len(all))
	}

	black, err := svc.List(context.Background(), Filter{Color: ColorBlack})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(black) != 1 || black[0].Name != "Hoodie" {
		t.Fatalf("unexpected black garments %+v", black)
	}
}

func TestListRejectsUnknownFilter(t *testing.T) {
	svc, repo, _ := setupService(t)

	_, err := svc.List(context.Background(), Filter{Color: "purple"})
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	_, err = svc.List(context.Background(), Filter{Size: "xxxl"})
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if atomic.LoadInt32(&repo.lists) != 0 {
		t.Fatalf("expected repository to be untouched")
	}
}

func TestListServedFromCache(t *testing.T) {
	svc, repo, mr := setupService(t)
	ctx := context.Background()

	first, err := svc.List(ctx, Filter{Size: SizeM})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := svc.List(ctx, Filter{Size: SizeM})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := atomic.LoadInt32(&repo.lists); got != 1 {
		t.Fatalf("expected one repository read, got %d", got)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Fatalf("cached listing differs: %+v vs %+v", first, second)
	}
	if !mr.Exists(cachePrefix + ":m") {
		t.Fatalf("expected cache key to be written")
	}
	if ttl := mr.TTL(cachePrefix + ":m"); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %s", ttl)
	}
}

func TestCreateInvalidatesCache(t *testing.T) {
	svc, repo, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.List(ctx, Filter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := svc.Create(ctx, Garment{Name: "Tee", Color: ColorWhite, Size: SizeS}); err != nil {
		t.Fatalf("create: %v", err)
	}
	items, err := svc.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != len(SampleGarments)+1 {
		t.Fatalf("expected new garment in listing, got %d items", len(items))
	}
	if got := atomic.LoadInt32(&repo.lists); got != 2 {
		t.Fatalf("expected cache miss after create, got %d repository reads", got)
	}
}

func TestCreateRejectsInvalidGarment(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Create(context.Background(), Garment{Name: "Cape", Color: "purple", Size: SizeM})
	if !errors.Is(err, ErrInvalidGarment) {
		t.Fatalf("expected ErrInvalidGarment, got %v", err)
	}
	_, err = svc.Create(context.Background(), Garment{Name: "Cape", Color: ColorPink, Size: SizeM, PhotoURL: "not a url"})
	if !errors.Is(err, ErrInvalidGarment) {
		t.Fatalf("expected ErrInvalidGarment for photo url, got %v", err)
	}
}

func TestListFallsBackWhenCacheDown(t *testing.T) {
	svc, repo, mr := setupService(t)
	mr.Close()

	items, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != len(SampleGarments) {
		t.Fatalf("expected %d garments, got %d", len(SampleGarments), len(items))
	}
	if got := atomic.LoadInt32(&repo.lists); got != 1 {
		t.Fatalf("expected repository read, got %d", got)
	}
}

func TestListWithoutCache(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil, time.Minute, nil)

	items, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(items))
	}
}
