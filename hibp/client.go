// Package hibp asks a Have-I-Been-Pwned-compatible oracle how many breaches
// contain a password, using the k-anonymity range protocol: only the first
// five hex characters of the password's SHA-1 digest leave the process.
package hibp

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/technical-param/password-checker-web/net"
)

const (
	DefaultBaseURL = "https://api.pwnedpasswords.com"
	DefaultTimeout = 8 * time.Second

	prefixLength = 5
)

type Client struct {
	httpClient net.Client
	baseURL    string
}

// NewClient builds a breach client over the given HTTP client. An empty
// baseURL falls back to the public pwnedpasswords API.
func NewClient(httpClient net.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// NewDefaultClient talks to the public API with the default timeout.
func NewDefaultClient() *Client {
	return NewClient(net.NewTimeoutClient(DefaultTimeout), DefaultBaseURL)
}

// CountForPassword returns the number of known breaches containing the
// password, 0 when it appears in none. Any transport or protocol failure is
// returned as an error; the full digest is never transmitted.
func (c *Client) CountForPassword(logger lager.Logger, password string) (int, error) {
	logger = logger.Session("breach-lookup")
	logger.Debug("starting")

	digest := sha1.Sum([]byte(password))
	hexDigest := strings.ToUpper(hex.EncodeToString(digest[:]))
	prefix, suffix := hexDigest[:prefixLength], hexDigest[prefixLength:]

	req, err := http.NewRequest("GET", c.baseURL+"/range/"+prefix, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request-failed", err)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected response status: %s", resp.Status)
		logger.Error("bad-status", err)
		return 0, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("read-body-failed", err)
		return 0, err
	}

	count, err := matchSuffix(body, suffix)
	if err != nil {
		logger.Error("malformed-response", err)
		return 0, err
	}

	logger.Debug("done", lager.Data{"count": count})

	return count, nil
}

// matchSuffix scans newline-delimited SUFFIX:COUNT records for the local
// digest suffix. Malformed records are collected into a single error since
// they mean the oracle cannot be trusted for this lookup.
func matchSuffix(body []byte, suffix string) (int, error) {
	var (
		parseErrs *multierror.Error
		matched   int
	)

	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			parseErrs = multierror.Append(parseErrs, fmt.Errorf("malformed record: %q", line))
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			parseErrs = multierror.Append(parseErrs, fmt.Errorf("malformed count in record %q: %s", line, err))
			continue
		}

		if strings.EqualFold(parts[0], suffix) {
			matched = count
		}
	}

	if err := parseErrs.ErrorOrNil(); err != nil {
		return 0, err
	}

	return matched, nil
}
