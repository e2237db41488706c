package govalorant

import (
	"context"

	"github.com/google/uuid"
)

// GetBundles lists every store bundle in upstream order.
//
// The language parameter is only sent when lang is not NoLanguage. A failed
// request returns a *TransportError, a body that does not match the envelope
// returns a *DecodeError and a non-success status returns an *APIError.
func (c *Client) GetBundles(ctx context.Context, lang Language) ([]Bundle, error) {
	return get[[]Bundle](ctx, c, lang, "bundles")
}

// GetBundle fetches the bundle with the given id.
// Errors are the same as for GetBundles; an unknown id is an *APIError for
// which IsNotFound reports true.
func (c *Client) GetBundle(ctx context.Context, id uuid.UUID, lang Language) (Bundle, error) {
	return get[Bundle](ctx, c, lang, "bundles", id.String())
}
