package net

import (
	"net/http"
	"time"
)

//go:generate counterfeiter . Client

type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewTimeoutClient returns a Client that gives up on any request after the
// given duration. A single attempt is made; callers decide what a failure
// means.
func NewTimeoutClient(timeout time.Duration) Client {
	return &http.Client{
		Timeout: timeout,
	}
}
