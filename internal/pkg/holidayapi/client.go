package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://holidayapi.com/v1"

// Holiday is a single entry from the HolidayAPI.com feed.
type Holiday struct {
	Name     string `json:"name"`
	Date     string `json:"date"`     // YYYY-MM-DD
	Observed string `json:"observed"` // YYYY-MM-DD
	Public   bool   `json:"public"`
}

type holidaysResponse struct {
	Status   int       `json:"status"`
	Error    string    `json:"error"`
	Holidays []Holiday `json:"holidays"`
}

// Client talks to HolidayAPI.com. Free-tier keys can only fetch historical
// years; callers must tolerate that constraint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL string, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// PublicHolidays fetches the public holidays for a country and year.
func (c *Client) PublicHolidays(ctx context.Context, country string, year int) ([]Holiday, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("holiday API key is not configured")
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("country", country)
	params.Set("year", strconv.Itoa(year))
	params.Set("public", "true")
	params.Set("language", "id")

	endpoint := c.baseURL + "/holidays?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call holiday feed: %w", err)
	}
	defer resp.Body.Close()

	var body holidaysResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode holiday feed response: %w", err)
	}

	if body.Status != http.StatusOK {
		if body.Error != "" {
			return nil, fmt.Errorf("holiday feed rejected the request: %s", body.Error)
		}
		return nil, fmt.Errorf("holiday feed returned status %d", body.Status)
	}

	return body.Holidays, nil
}
