package wordpress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const maxBodyBytes = 8 << 20

// request describes one read against the REST API. decode maps the body to
// internal values; every read shares the availability, timeout and fallback policy.
type request[T any] struct {
	op       string
	endpoint string
	query    url.Values
	params   []any
	decode   func([]byte) ([]T, error)
}

// fetch runs a single attempt and reports why it produced nothing.
func fetch[T any](ctx context.Context, c *Client, req request[T]) ([]T, error) {
	if !c.IsAvailable(ctx) {
		return nil, c.unavailableErr()
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	body, err := c.get(reqCtx, req.endpoint, req.query)
	if err != nil {
		return nil, err
	}

	items, err := req.decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return items, nil
}

// listOrFallback returns live items, or the fallback on any failure including an empty list.
func listOrFallback[T any](ctx context.Context, c *Client, req request[T], fallback func() []T) []T {
	items, err := fetch(ctx, c, req)
	if err != nil {
		c.logFallback(req.op, req.params, err)
		return fallback()
	}
	return items
}

// firstOrNil returns the first live item, or nil when there is none.
func firstOrNil[T any](ctx context.Context, c *Client, req request[T]) *T {
	items, err := fetch(ctx, c, req)
	if err != nil {
		c.logFallback(req.op, req.params, err)
		return nil
	}
	item := items[0]
	return &item
}

func (c *Client) logFallback(op string, params []any, err error) {
	args := append([]any{"op", op}, params...)
	switch {
	case errors.Is(err, ErrDisabled), errors.Is(err, ErrUnconfigured), errors.Is(err, errProbeFailed):
		c.logger.Debug("using fallback content, wordpress api not available", args...)
	case errors.Is(err, ErrEmpty):
		c.logger.Debug("wordpress returned no items, using fallback", args...)
	default:
		args = append(args, "api_url", c.baseURL, "error", err)
		c.logger.Warn("wordpress api error, using fallback", args...)
	}
}

// get issues a GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	target, err := buildURL(endpoint, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}
	return body, nil
}

func buildURL(endpoint string, query url.Values) (string, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid wordpress url %s: %w", endpoint, err)
	}
	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

func probeQuery() url.Values {
	return url.Values{"per_page": {"1"}}
}

func listQuery(perPage, page int) url.Values {
	return url.Values{
		"_embed":   {"wp:featuredmedia"},
		"per_page": {strconv.Itoa(perPage)},
		"page":     {strconv.Itoa(page)},
	}
}

func slugQuery(slug string, embed bool) url.Values {
	q := url.Values{"slug": {slug}}
	if embed {
		q.Set("_embed", "wp:featuredmedia")
	}
	return q
}
