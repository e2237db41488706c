package govalorant

import (
	"context"

	"github.com/google/uuid"
)

// GetSeasons lists episodes and acts in upstream order.
func (c *Client) GetSeasons(ctx context.Context, lang Language) ([]Season, error) {
	return get[[]Season](ctx, c, lang, "seasons")
}

func (c *Client) GetSeason(ctx context.Context, id uuid.UUID, lang Language) (Season, error) {
	return get[Season](ctx, c, lang, "seasons", id.String())
}

// GetVersion returns the game build the data was extracted from. It takes no language.
func (c *Client) GetVersion(ctx context.Context) (Version, error) {
	return get[Version](ctx, c, NoLanguage, "version")
}
