// Package network holds the HTTP client used for the few outbound requests subplay makes.
package network

import (
	"net/http"
	"time"
)

// Client is shared by every outbound request. Lookups are optional features,
// so they fail fast instead of delaying the command that triggered them.
var Client = &http.Client{
	Timeout:   5 * time.Second,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 5 * time.Second
	t.TLSHandshakeTimeout = 5 * time.Second
	return t
}
