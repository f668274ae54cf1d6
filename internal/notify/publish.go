package notify

import (
	"context"
	"fmt"
	"log/slog"
)

// Publisher sends a single alert. *Client implements it.
type Publisher interface {
	Publish(ctx context.Context, alert *OverloadAlert) error
}

// PublishAll sends alerts in order and stops at the first failure.
func PublishAll(ctx context.Context, p Publisher, alerts []*OverloadAlert) error {
	for i, alert := range alerts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Publish(ctx, alert); err != nil {
			return fmt.Errorf("alert %d of %d (specialist %d, month %s): %w",
				i+1, len(alerts), alert.SpecialistID, alert.Month, err)
		}
	}
	if len(alerts) > 0 {
		slog.Info("Published overload alerts", "count", len(alerts))
	}
	return nil
}
