package firebase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/signadot/rtdbview/debug"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
)

const (
	defaultRetries = 3
	defaultBackoff = 200 * time.Millisecond
)

type transport struct {
	hc      *http.Client
	retries uint64
	backoff time.Duration
}

func newTransport(opts []Option) *transport {
	t := &transport{
		hc:      http.DefaultClient,
		retries: defaultRetries,
		backoff: defaultBackoff,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

type Option func(*transport)

func WithHTTPClient(hc *http.Client) Option {
	return func(t *transport) { t.hc = hc }
}

// WithRetries bounds the number of retries after the first attempt.
func WithRetries(n uint64) Option {
	return func(t *transport) { t.retries = n }
}

func WithBackoff(d time.Duration) Option {
	return func(t *transport) { t.backoff = d }
}

var secretParam = regexp.MustCompile(`(auth|key)=[^&]*`)

func redact(u string) string {
	return secretParam.ReplaceAllString(u, "$1=REDACTED")
}

// do sends the request and returns the body of a 2xx response.
func (t *transport) do(ctx context.Context, op, method, url string, body []byte) ([]byte, error) {
	b := retry.WithMaxRetries(t.retries, retry.NewExponential(t.backoff))
	var res []byte
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rd)
		if err != nil {
			return err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := t.hc.Do(req)
		if err != nil {
			if debug.HTTP() {
				debug.Logf("%s %s: %v\n", method, redact(url), err)
			}
			if ctx.Err() != nil {
				return err
			}
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()
		d, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("error reading %s response: %w", op, err))
		}
		if debug.HTTP() {
			debug.Logf("%s %s -> %d (%d bytes)\n", method, redact(url), resp.StatusCode, len(d))
		}
		if resp.StatusCode/100 != 2 {
			sErr := &StatusErr{Op: op, Code: resp.StatusCode, Message: errorMessage(d), Body: d}
			if sErr.Temporary() {
				return retry.RetryableError(sErr)
			}
			return sErr
		}
		res = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// errorMessage digs the message out of the error bodies both services
// send: {"error": {"message": "..."}} and {"error": "..."}.
func errorMessage(d []byte) string {
	node, _ := parse.Parse(d)
	e := ir.Get(node, "error")
	if e == nil {
		return ""
	}
	switch e.Type {
	case ir.StringType:
		return e.String
	case ir.ObjectType:
		if m := ir.Get(e, "message"); m != nil && m.Type == ir.StringType {
			return m.String
		}
	}
	return ""
}
