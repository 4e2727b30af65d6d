package fetcher

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains common Accept-Language values
var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,es;q=0.8",
}

// addRequestHeaders adds headers asking for a fresh JSON payload
func addRequestHeaders(req *http.Request) {
	// providers are JSON APIs, still accept anything so non-JSON answers reach storage validation
	req.Header.Set("Accept", "application/json,text/json;q=0.9,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
	req.Header.Set("Connection", "keep-alive")
}
