package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus" // Logging library
)

// DefaultRandomOrgURL asks random.org for one two-decimal fraction in plain text
const DefaultRandomOrgURL = "https://www.random.org/decimal-fractions/?num=1&dec=2&col=1&format=plain&rnd=new"

// RequestError means the random.org request itself failed
type RequestError struct {
	Message string // Human-readable description
}

// Error returns the request failure message
func (e *RequestError) Error() string {
	return e.Message
}

// FormatError means random.org answered with something that is not a number
type FormatError struct {
	Raw string // Trimmed response body as received
}

// Error returns the malformed response message
func (e *FormatError) Error() string {
	return fmt.Sprintf("Invalid response from random.org: %s", e.Raw)
}

// RandomOrgClient fetches random decimal fractions from random.org
type RandomOrgClient struct {
	url    string       // Endpoint returning one plain-text fraction
	client *http.Client // HTTP client carrying the request timeout
}

// NewRandomOrgClient creates a client for the given endpoint and timeout
func NewRandomOrgClient(rawURL string, timeout time.Duration) *RandomOrgClient {
	return &RandomOrgClient{
		url:    rawURL,                         // Endpoint to query
		client: &http.Client{Timeout: timeout}, // Bounded round trips
	}
}

// Float fetches one random fraction in [0, 1] from random.org
func (c *RandomOrgClient) Float() (float64, error) {
	// Issue the request within the configured timeout
	resp, err := c.client.Get(c.url)
	if err != nil {
		// A deadline hit gets its own message
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return 0, &RequestError{Message: "Request to random.org timed out."}
		}
		return 0, &RequestError{Message: fmt.Sprintf("Request to random.org failed: %v", err)}
	}
	defer resp.Body.Close() // Release the connection

	// Anything but 2xx is a failed request
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &RequestError{Message: fmt.Sprintf("Request to random.org failed: status %d", resp.StatusCode)}
	}
	// Read the plain-text body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &RequestError{Message: fmt.Sprintf("Request to random.org failed: %v", err)}
	}
	// Parse the trimmed body as a float
	raw := strings.TrimSpace(string(body))
	fraction, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FormatError{Raw: raw}
	}
	// Log the fetched fraction
	logrus.WithFields(logrus.Fields{
		"fraction": fraction, // Value received from random.org
	}).Info("Random fraction fetched")
	return fraction, nil
}
