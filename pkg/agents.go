package govalorant

import (
	"context"

	"github.com/google/uuid"
)

// GetAgents lists every agent, including ones that are not playable.
func (c *Client) GetAgents(ctx context.Context, lang Language) ([]Agent, error) {
	return get[[]Agent](ctx, c, lang, "agents")
}

func (c *Client) GetAgent(ctx context.Context, id uuid.UUID, lang Language) (Agent, error) {
	return get[Agent](ctx, c, lang, "agents", id.String())
}
