package govalorant

import (
	"context"

	"github.com/google/uuid"
)

func (c *Client) GetMaps(ctx context.Context, lang Language) ([]Map, error) {
	return get[[]Map](ctx, c, lang, "maps")
}

func (c *Client) GetMap(ctx context.Context, id uuid.UUID, lang Language) (Map, error) {
	return get[Map](ctx, c, lang, "maps", id.String())
}
