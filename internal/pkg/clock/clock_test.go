package clock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wita = time.FixedZone("WITA", 8*3600)

func TestWorldTimeClock_Now_FromAPI(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"datetime":"2025-03-10T14:30:45.123456+08:00","timezone":"Asia/Makassar"}`))
	}))
	defer server.Close()

	clk := NewWorldTimeClock(server.URL, 5*time.Second, wita)
	now := clk.Now(context.Background())

	assert.Equal(t, 2025, now.Year())
	assert.Equal(t, time.March, now.Month())
	assert.Equal(t, 10, now.Day())
	assert.Equal(t, 14, now.Hour())
	assert.Equal(t, 30, now.Minute())
	assert.Equal(t, "WITA", now.Location().String())
}

func TestWorldTimeClock_Now_FallsBackOnServerError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	clk := NewWorldTimeClock(server.URL, 5*time.Second, wita)

	before := time.Now().In(wita)
	now := clk.Now(context.Background())
	after := time.Now().In(wita)

	assert.False(t, now.Before(before.Add(-time.Second)))
	assert.False(t, now.After(after.Add(time.Second)))
	assert.Equal(t, "WITA", now.Location().String())
}

func TestWorldTimeClock_Now_FallsBackOnGarbage(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"datetime":"yesterday-ish"}`))
	}))
	defer server.Close()

	clk := NewWorldTimeClock(server.URL, 5*time.Second, wita)
	now := clk.Now(context.Background())

	assert.Equal(t, "WITA", now.Location().String())
	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

func TestWorldTimeClock_Now_FallsBackOnTimeout(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	clk := NewWorldTimeClock(server.URL, 20*time.Millisecond, wita)
	now := clk.Now(context.Background())

	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

func TestWorldTimeClock_Now_FallsBackWhenUnreachable(t *testing.T) {
	t.Parallel()
	clk := NewWorldTimeClock("http://127.0.0.1:1", 50*time.Millisecond, wita)
	now := clk.Now(context.Background())

	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()
	in := time.Date(2025, 3, 10, 14, 30, 45, 123, wita)
	out := StartOfDay(in)

	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, wita), out)
	assert.Equal(t, in.Location(), out.Location())
}

func TestEndOfDay(t *testing.T) {
	t.Parallel()
	in := time.Date(2025, 3, 10, 0, 0, 0, 0, wita)
	out := EndOfDay(in)

	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 999000000, wita), out)
}
