package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type fakeRateCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
}

func newFakeRateCounter() *fakeRateCounter {
	return &fakeRateCounter{
		counts:  map[string]int64{},
		expires: map[string]time.Duration{},
	}
}

func (f *fakeRateCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeRateCounter) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestIncrWithTTLSetsExpiryOnFirstHit(t *testing.T) {
	ctx := context.Background()
	counter := newFakeRateCounter()

	for want := int64(1); want <= 3; want++ {
		got, err := incrWithTTL(ctx, counter, "rate:login:test", time.Hour)
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if got != want {
			t.Errorf("count = %d, want %d", got, want)
		}
	}

	if ttl := counter.expires["rate:login:test"]; ttl != time.Hour {
		t.Errorf("expire set to %v, want %v", ttl, time.Hour)
	}
	if len(counter.expires) != 1 {
		t.Errorf("expire called %d times, want once", len(counter.expires))
	}
}

func TestUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		value  any
		want   uint
		wantOK bool
	}{
		{"uint", uint(7), 7, true},
		{"int", 12, 12, true},
		{"negative int", -1, 0, false},
		{"uint64", uint64(9), 9, true},
		{"int64", int64(3), 3, true},
		{"string", "7", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Set("userID", tc.value)

			got, ok := userIDFromContext(c)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestUserIDFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := userIDFromContext(c); ok {
		t.Error("missing userID reported present")
	}
}

func TestParseDocumentID(t *testing.T) {
	if id, err := parseDocumentID("42"); err != nil || id != 42 {
		t.Errorf("parse valid id: got (%d, %v)", id, err)
	}
	for _, bad := range []string{"", "abc", "-1"} {
		if _, err := parseDocumentID(bad); err == nil {
			t.Errorf("parse %q succeeded", bad)
		}
	}
}
