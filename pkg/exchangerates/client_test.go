package exchangerates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfoliotracker/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_GetRatesOnDay(t *testing.T) {
	t.Run("parses rates and caches by date and base", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			require.Equal(t, "/2025-01-01", r.URL.Path)
			require.Equal(t, "EUR", r.URL.Query().Get("base"))
			w.Write([]byte(`{"base":"EUR","date":"2025-01-01","rates":{"USD":1.25,"GBP":0.8}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		rates, err := client.GetRatesOnDay(context.Background(), util.NewDate(2025, 1, 1), "EUR")
		require.NoError(t, err)
		require.Len(t, rates, 2)
		require.True(t, rates["USD"].Equal(decimal.NewFromFloat(1.25)))

		_, err = client.GetRatesOnDay(context.Background(), util.NewDate(2025, 1, 1), "EUR")
		require.NoError(t, err)
		require.Equal(t, 1, requests)
	})

	t.Run("non-200 response errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GetRatesOnDay(context.Background(), util.NewDate(2025, 1, 1), "EUR")
		require.ErrorContains(t, err, "404")
	})

	t.Run("empty rate table errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"EUR","date":"2025-01-01","rates":{}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GetRatesOnDay(context.Background(), util.NewDate(2025, 1, 1), "EUR")
		require.ErrorContains(t, err, "no rates found")
	})
}
