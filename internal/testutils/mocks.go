package testutils

import (
	"errors"
	"io"
	"net/http"
)

// RoundTripFunc lets a plain function stand in for an http.RoundTripper.
type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// ErrConnectionReset is returned by FailingBody once its payload is exhausted.
var ErrConnectionReset = errors.New("connection reset by peer")

// FailingBody yields Payload and then fails instead of returning io.EOF,
// simulating a transfer cut off mid-stream.
type FailingBody struct {
	Payload []byte
	off     int
}

func (b *FailingBody) Read(p []byte) (int, error) {
	if b.off >= len(b.Payload) {
		return 0, ErrConnectionReset
	}
	n := copy(p, b.Payload[b.off:])
	b.off += n
	return n, nil
}

func (b *FailingBody) Close() error { return nil }

// StaticResponse builds a transport that answers every request with status and body.
func StaticResponse(status int, body io.ReadCloser) RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Status:     http.StatusText(status),
			Header:     make(http.Header),
			Body:       body,
			Request:    req,
		}, nil
	}
}
