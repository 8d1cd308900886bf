package clock

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Clock supplies the current time in the business timezone.
type Clock interface {
	Now(ctx context.Context) time.Time
}

// worldTimeResponse is the subset of the WorldTimeAPI payload we care about.
type worldTimeResponse struct {
	Datetime string `json:"datetime"`
	Timezone string `json:"timezone"`
}

// WorldTimeClock fetches the current time from WorldTimeAPI and falls back to
// the local system clock rendered in the business timezone when the API is
// unreachable, slow, or returns garbage. A single attempt, no retries: a stale
// local clock is an accepted risk.
type WorldTimeClock struct {
	url    string
	loc    *time.Location
	client *http.Client
}

func NewWorldTimeClock(url string, timeout time.Duration, loc *time.Location) *WorldTimeClock {
	return &WorldTimeClock{
		url:    url,
		loc:    loc,
		client: &http.Client{Timeout: timeout},
	}
}

// Now implements Clock. It never fails: any error on the external call
// degrades silently to the local clock.
func (c *WorldTimeClock) Now(ctx context.Context) time.Time {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return c.local()
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.local()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.local()
	}

	var body worldTimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.local()
	}

	t, err := time.Parse(time.RFC3339Nano, body.Datetime)
	if err != nil {
		t, err = time.Parse(time.RFC3339, body.Datetime)
		if err != nil {
			return c.local()
		}
	}

	return t.In(c.loc)
}

func (c *WorldTimeClock) local() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the business timezone the clock reports in.
func (c *WorldTimeClock) Location() *time.Location {
	return c.loc
}

// StartOfDay truncates t to 00:00:00.000 of its calendar day, keeping the
// location of t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay ceils t to 23:59:59.999 of its calendar day, keeping the location
// of t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
