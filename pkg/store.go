package govalorant

import (
	"context"

	"github.com/google/uuid"
)

// GetCurrencies lists the in-game currencies.
func (c *Client) GetCurrencies(ctx context.Context, lang Language) ([]Currency, error) {
	return get[[]Currency](ctx, c, lang, "currencies")
}

func (c *Client) GetCurrency(ctx context.Context, id uuid.UUID, lang Language) (Currency, error) {
	return get[Currency](ctx, c, lang, "currencies", id.String())
}

// GetContentTiers lists the rarity tiers store items belong to.
func (c *Client) GetContentTiers(ctx context.Context, lang Language) ([]ContentTier, error) {
	return get[[]ContentTier](ctx, c, lang, "contenttiers")
}

func (c *Client) GetContentTier(ctx context.Context, id uuid.UUID, lang Language) (ContentTier, error) {
	return get[ContentTier](ctx, c, lang, "contenttiers", id.String())
}
