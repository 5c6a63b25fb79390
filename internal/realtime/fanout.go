package realtime

import (
	"context"
	"errors"

	"github.com/shenikar/rescue_coordination_system/internal/models"
)

// Publisher receives lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// Fanout forwards each event to every publisher, even when one fails.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event models.Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
