package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
)

// PublishJSON marshals v and publishes it under the given routing key.
func PublishJSON(ctx context.Context, p Publisher, routingKey string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.Publish(ctx, routingKey, payload)
}
