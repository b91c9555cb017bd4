package exchangerates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client fetches daily exchange-rate tables from a frankfurter-style
// API. Responses are cached in memory per (date, base) - rate tables for
// a past date never change.
type Client struct {
	HttpClient *http.Client
	BaseUrl    string

	cache map[string][]byte
}

func NewClient(baseUrl string) *Client {
	return &Client{
		HttpClient: http.DefaultClient,
		BaseUrl:    baseUrl,
		cache:      map[string][]byte{},
	}
}

type ratesResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (c *Client) getBytes(ctx context.Context, date time.Time, base string) ([]byte, error) {
	key := fmt.Sprintf("%s|%s", date.Format(time.DateOnly), base)
	if out, ok := c.cache[key]; ok {
		return out, nil
	}

	url := fmt.Sprintf("%s/%s?base=%s", c.BaseUrl, date.Format(time.DateOnly), base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	c.cache[key] = responseBytes

	return responseBytes, nil
}

// GetRatesOnDay returns the rate table for the given date, keyed by
// currency code relative to base. The API resolves weekends and
// holidays to the nearest prior business day itself.
func (c *Client) GetRatesOnDay(ctx context.Context, date time.Time, base string) (map[string]decimal.Decimal, error) {
	responseBytes, err := c.getBytes(ctx, date, base)
	if err != nil {
		return nil, err
	}

	responseJson := ratesResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rates response: %w", err)
	}

	if len(responseJson.Rates) == 0 {
		return nil, fmt.Errorf("no rates found for %s", date.Format(time.DateOnly))
	}

	return responseJson.Rates, nil
}
