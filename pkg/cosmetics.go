package govalorant

import (
	"context"

	"github.com/google/uuid"
)

func (c *Client) GetPlayerCards(ctx context.Context, lang Language) ([]PlayerCard, error) {
	return get[[]PlayerCard](ctx, c, lang, "playercards")
}

func (c *Client) GetPlayerCard(ctx context.Context, id uuid.UUID, lang Language) (PlayerCard, error) {
	return get[PlayerCard](ctx, c, lang, "playercards", id.String())
}

func (c *Client) GetPlayerTitles(ctx context.Context, lang Language) ([]PlayerTitle, error) {
	return get[[]PlayerTitle](ctx, c, lang, "playertitles")
}

func (c *Client) GetPlayerTitle(ctx context.Context, id uuid.UUID, lang Language) (PlayerTitle, error) {
	return get[PlayerTitle](ctx, c, lang, "playertitles", id.String())
}

func (c *Client) GetSprays(ctx context.Context, lang Language) ([]Spray, error) {
	return get[[]Spray](ctx, c, lang, "sprays")
}

func (c *Client) GetSpray(ctx context.Context, id uuid.UUID, lang Language) (Spray, error) {
	return get[Spray](ctx, c, lang, "sprays", id.String())
}
