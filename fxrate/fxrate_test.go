package fxrate

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(body string, status int) (*Client, *httptest.Server) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	return &Client{URL: srv.URL, http: srv.Client()}, srv
}

func TestRates(t *testing.T) {
	c, srv := newTestClient(`{
  "date": "2025-08-28",
  "usd": {"krw": 1390.0, "jpy": 139.0, "hkd": 7.79}
}`, http.StatusOK)
	defer srv.Close()

	rates, err := c.Rates()
	require.NoError(t, err)

	assert.Equal(t, 1390.0, rates.USDKRW)
	// cross rates derive from the won rate
	assert.InDelta(t, 1000.0, rates.JPY100KRW, 1e-9)
	assert.InDelta(t, 1390.0/7.79, rates.HKDKRW, 1e-9)
}

func TestRates_ZeroDivisors(t *testing.T) {
	c, srv := newTestClient(`{"usd": {"krw": 1390.0, "jpy": 0, "hkd": 0}}`, http.StatusOK)
	defer srv.Close()

	rates, err := c.Rates()
	require.NoError(t, err)

	// the won rate survives, the broken cross rates degrade to zero
	assert.Equal(t, 1390.0, rates.USDKRW)
	assert.Zero(t, rates.JPY100KRW)
	assert.Zero(t, rates.HKDKRW)
}

func TestRates_MissingCurrencies(t *testing.T) {
	c, srv := newTestClient(`{"usd": {"eur": 0.86}}`, http.StatusOK)
	defer srv.Close()

	rates, err := c.Rates()
	require.NoError(t, err)
	assert.Zero(t, rates.USDKRW)
}

func TestRates_HTTPError(t *testing.T) {
	c, srv := newTestClient(`gateway timeout`, http.StatusBadGateway)
	defer srv.Close()

	_, err := c.Rates()
	assert.Error(t, err)
}

func TestRates_BadJSON(t *testing.T) {
	c, srv := newTestClient(`{"usd":`, http.StatusOK)
	defer srv.Close()

	_, err := c.Rates()
	assert.Error(t, err)
}
