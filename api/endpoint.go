package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/leftovermart/client-go/schema"
)

// fallbackConvention picks what an endpoint returns for a status code missing
// from its table. The original endpoints grew three distinct conventions and
// test fixtures depend on them, so the convention is declared per endpoint
// rather than unified.
type fallbackConvention int

const (
	// "Request failed: <status code>"
	fallbackStatus fallbackConvention = iota
	// "Request failed: <server-supplied message>"
	fallbackServerMessage
	// the raw server-supplied message
	fallbackRawServerMessage
)

// endpoint declares one backend call: method, resolved path, query, body,
// and the status-code-to-message table. A single executor owns the control
// flow for every endpoint.
type endpoint struct {
	method string
	path   string
	query  url.Values
	body   any
	upload *upload

	statuses map[int]string
	// detail maps a status to a message prefix completed by the
	// server-supplied detail text.
	detail map[int]string
	// successStatuses are error codes treated as success (e.g. deleting an
	// already-gone notification).
	successStatuses []int
	fallback        fallbackConvention
	media           bool
}

// upload is a multipart file body.
type upload struct {
	field    string
	filename string
	content  io.Reader
}

// execute issues the request and normalizes every failure into an *Error.
// On success it returns the raw response body for the caller to validate.
func (c *Client) execute(ctx context.Context, ep endpoint) ([]byte, error) {
	target := c.baseURL + ep.path
	if len(ep.query) > 0 {
		target += "?" + ep.query.Encode()
	}

	var (
		reader      io.Reader
		contentType string
	)
	switch {
	case ep.upload != nil:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		part, err := writer.CreateFormFile(ep.upload.field, ep.upload.filename)
		if err == nil {
			_, err = io.Copy(part, ep.upload.content)
		}
		if err == nil {
			err = writer.Close()
		}
		if err != nil {
			c.logger.Error().Err(err).Str("path", ep.path).Msg("failed to build multipart body")
			return nil, errUnreachable()
		}
		reader = buf
		contentType = writer.FormDataContentType()
	case ep.body != nil:
		encoded, err := json.Marshal(ep.body)
		if err != nil {
			c.logger.Error().Err(err).Str("path", ep.path).Msg("failed to encode request body")
			return nil, errUnreachable()
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, target, reader)
	if err != nil {
		c.logger.Error().Err(err).Str("path", ep.path).Msg("failed to build request")
		return nil, errUnreachable()
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	httpClient := c.std
	if ep.media {
		httpClient = c.media
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", ep.method).Str("path", ep.path).Msg("backend unreachable")
		return nil, errUnreachable()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", ep.path).Msg("failed to read response body")
		return nil, errUnreachable()
	}

	c.logger.Debug().
		Str("method", ep.method).
		Str("path", ep.path).
		Int("status", resp.StatusCode).
		Msg("request completed")

	if resp.StatusCode < 400 {
		return data, nil
	}

	for _, status := range ep.successStatuses {
		if resp.StatusCode == status {
			return data, nil
		}
	}

	if msg, ok := ep.statuses[resp.StatusCode]; ok {
		return nil, errHTTP(resp.StatusCode, msg)
	}
	if prefix, ok := ep.detail[resp.StatusCode]; ok {
		return nil, errHTTP(resp.StatusCode, prefix+serverMessage(data, resp.StatusCode))
	}

	switch ep.fallback {
	case fallbackServerMessage:
		return nil, errHTTP(resp.StatusCode, "Request failed: "+serverMessage(data, resp.StatusCode))
	case fallbackRawServerMessage:
		return nil, errHTTP(resp.StatusCode, serverMessage(data, resp.StatusCode))
	default:
		return nil, errHTTP(resp.StatusCode, "Request failed: "+strconv.Itoa(resp.StatusCode))
	}
}

// serverMessage extracts the backend's {"message": ...} detail text, falling
// back to the status code when the body carries none.
func serverMessage(data []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strconv.Itoa(status)
}

// parseAs validates the body against the schema and decodes it as T. Any
// mismatch yields the endpoint's fixed "Response is not X" message.
func parseAs[T any](data []byte, s schema.Schema, mismatch string) (T, error) {
	var zero T
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return zero, errInvalidResponse(mismatch)
	}
	if !s.Validate(raw) {
		return zero, errInvalidResponse(mismatch)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, errInvalidResponse(mismatch)
	}
	return out, nil
}

// intField pulls a single numeric field out of a wrapper object such as
// {"userId": 42} or {"count": 7}.
func intField(data []byte, field, mismatch string) (int, error) {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return 0, errInvalidResponse(mismatch)
	}
	value, ok := body[field].(float64)
	if !ok {
		return 0, errInvalidResponse(mismatch)
	}
	return int(value), nil
}

// boolField pulls a single boolean field out of a wrapper object.
func boolField(data []byte, field, mismatch string) (bool, error) {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return false, errInvalidResponse(mismatch)
	}
	value, ok := body[field].(bool)
	if !ok {
		return false, errInvalidResponse(mismatch)
	}
	return value, nil
}

func singleValue(key, value string) url.Values {
	q := url.Values{}
	q.Set(key, value)
	return q
}

func pageQuery(page, resultsPerPage int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("resultsPerPage", strconv.Itoa(resultsPerPage))
	return q
}
