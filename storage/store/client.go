// Package store implements the entity repositories against the external
// record store: a generic REST collection per entity, addressed by a base
// URL, with json-server response conventions (list accepts _sort/_order,
// mutations return the persisted entity, delete returns no content, error
// bodies carry the failure detail).
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.Store.URL, "/"),
		http:    &http.Client{Timeout: conf.Store.Timeout},
	}
}

// do performs one store round trip. `in` (if any) is sent as the JSON body
// and the 2xx response body is decoded into `out` (unless nil or 204).
func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return errors.Wrapf(err, "encoding %s %s body", method, path)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return errors.Wrapf(err, "building %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}

	res, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return TimeoutError{}
		}
		return &TransportError{Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var detail bytes.Buffer
		_, _ = detail.ReadFrom(res.Body)
		return &ApplicationError{
			StatusCode: res.StatusCode,
			Detail:     strings.TrimSpace(detail.String()),
		}
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func collectionPath(collection string) string {
	return "/" + collection
}

func recordPath(collection string, id core.ID) string {
	return "/" + collection + "/" + url.PathEscape(id.String())
}
