package govalorant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

const apiVersion = "v1"

// APIResult is the envelope every Valorant API response is wrapped in.
type APIResult[T any] struct {
	Status int      `json:"status"`
	Data   T        `json:"data"`
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func (r APIResult[T]) message() string {
	if r.Error != "" {
		return r.Error
	}
	return strings.Join(r.Errors, "; ")
}

// get performs one GET and unwraps the envelope into T. There is no retry.
func get[T any](ctx context.Context, c *Client, lang Language, segments ...string) (T, error) {
	var zero T

	target, err := c.endpoint(lang, segments...)
	if err != nil {
		return zero, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return zero, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return zero, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{Method: http.MethodGet, URL: target, Err: errors.Wrap(err, "read body")}
	}

	c.log.WithFields(log.Fields{
		"url":      target,
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(start),
	}).Debug("Valorant API response received")

	data, err := unwrap(target, resp.StatusCode, body)
	if err != nil {
		return zero, err
	}

	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		return zero, &DecodeError{URL: target, Body: body, Err: errors.Wrap(err, "decode payload")}
	}
	if err := c.validatePayload(payload); err != nil {
		return zero, &DecodeError{URL: target, Body: body, Err: err}
	}

	return payload, nil
}

// unwrap decodes the envelope strictly and returns the raw data member.
func unwrap(target string, httpStatus int, body []byte) (json.RawMessage, error) {
	var result APIResult[json.RawMessage]

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		if !isSuccess(httpStatus) {
			return nil, &APIError{URL: target, Status: httpStatus}
		}
		return nil, &DecodeError{URL: target, Body: body, Err: errors.Wrap(err, "decode envelope")}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{URL: target, Body: body, Err: errors.New("trailing data after envelope")}
	}

	switch {
	case !isSuccess(httpStatus):
		return nil, &APIError{URL: target, Status: httpStatus, Message: result.message()}
	case result.Status == 0:
		return nil, &DecodeError{URL: target, Body: body, Err: errors.New("envelope has no status")}
	case !isSuccess(result.Status):
		return nil, &APIError{URL: target, Status: result.Status, Message: result.message()}
	}

	if len(result.Data) == 0 || bytes.Equal(bytes.TrimSpace(result.Data), []byte("null")) {
		return nil, &DecodeError{URL: target, Body: body, Err: ErrMissingData}
	}
	return result.Data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
