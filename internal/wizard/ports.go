package wizard

import (
	"context"

	"carshield-admin-api/internal/model"
)

// ClientLookup is the external existence check consulted before a client
// draft is frozen. It is the wizard's only suspending collaborator.
type ClientLookup interface {
	CheckExists(ctx context.Context, client model.DraftClient) (model.ExistsResult, error)
}

// ClientStore persists intermediate commits: the client alone at step one,
// the merged client + vehicle at step two. Both return the client row id.
type ClientStore interface {
	SaveClient(ctx context.Context, client model.DraftClient) (string, error)
	SaveClientVehicle(ctx context.Context, clientID string, client model.DraftClient, vehicle model.DraftVehicle) (string, error)
}

// OrderStore receives the final aggregate payload at step three.
type OrderStore interface {
	CreateOrder(ctx context.Context, payload model.OrderPayload) (string, error)
}
