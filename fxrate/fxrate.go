// Package fxrate implements the exchange-rate source over the free
// jsdelivr currency-api.
package fxrate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hyoukjoo/marketbot"
)

const defaultURL = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies/usd.json"

// Client fetches the daily USD document and derives the won rates the bot
// reports.
type Client struct {
	// URL overrides the document location, for tests.
	URL string

	http *http.Client
}

var _ marketbot.RateSource = (*Client)(nil)

// New returns a ready to use client.
func New() *Client {
	return &Client{http: &http.Client{Timeout: 10 * time.Second}}
}

// Rates returns the current exchange rates. The document quotes everything
// per US dollar, so the yen and Hong Kong dollar rates are cross-derived
// from the won rate; a zero divisor degrades that rate to 0 instead of
// failing the whole fetch.
func (c *Client) Rates() (marketbot.Rates, error) {
	// {
	//   "date": "2025-08-28",
	//   "usd": { "krw": 1390.11, "jpy": 147.02, "hkd": 7.79, ... }
	// }

	addr := c.URL
	if addr == "" {
		addr = defaultURL
	}

	var content struct {
		USD map[string]float64 `json:"usd"`
	}
	if err := jwget(c.http, addr, &content); err != nil {
		return marketbot.Rates{}, fmt.Errorf("cannot fetch exchange rates: %w", err)
	}

	usdKRW := content.USD["krw"]
	jpy := content.USD["jpy"]
	hkd := content.USD["hkd"]

	rates := marketbot.Rates{USDKRW: usdKRW}
	if jpy > 0 {
		rates.JPY100KRW = usdKRW / jpy * 100
	}
	if hkd > 0 {
		rates.HKDKRW = usdKRW / hkd
	}
	return rates, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
