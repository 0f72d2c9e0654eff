package cache

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestRecentCache(t *testing.T) *RecentCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRecentCache(client)
}

func recordAll(t *testing.T, c *RecentCache, userID int64, ids ...string) {
	t.Helper()
	ctx := context.Background()
	for _, id := range ids {
		if err := c.Record(ctx, userID, id); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}
}

func TestRecentRepeatViewMovesToFront(t *testing.T) {
	c := newTestRecentCache(t)
	recordAll(t, c, 1, "A", "B", "A", "C")

	got, err := c.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"C", "A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recent = %v, want %v (deduped, most recent first)", got, want)
	}
}

func TestRecentCappedAtTen(t *testing.T) {
	c := newTestRecentCache(t)
	for i := 1; i <= 12; i++ {
		recordAll(t, c, 1, fmt.Sprintf("art-%d", i))
	}

	got, err := c.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("recent holds %d ids, want 10", len(got))
	}
	if got[0] != "art-12" || got[9] != "art-3" {
		t.Errorf("recent = %v, want art-12 down to art-3", got)
	}
}

func TestRecentRepeatViewNeverDuplicates(t *testing.T) {
	c := newTestRecentCache(t)
	recordAll(t, c, 1, "A", "B", "A", "A")

	got, err := c.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	count := 0
	for _, id := range got {
		if id == "A" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("A appears %d times in %v, want exactly 1", count, got)
	}
}

func TestRecentListsArePerUser(t *testing.T) {
	c := newTestRecentCache(t)
	recordAll(t, c, 1, "A")
	recordAll(t, c, 2, "B")

	got, err := c.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("user 1 recent = %v, want [A]", got)
	}
}

func TestRecentEmptyForNewUser(t *testing.T) {
	c := newTestRecentCache(t)

	got, err := c.List(context.Background(), 99)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("fresh user recent = %v, want empty", got)
	}
}
