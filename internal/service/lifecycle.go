package service

import (
	"context"

	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Report cache categories.
const (
	CategoryPending         = "pending"
	CategoryCompleted       = "completed"
	CategoryArchived        = "archived"
	CategoryAggregated      = "aggregated"
	CategoryTableAggregated = "table-aggregated"
	CategoryChart           = "chart"
)

var reportCategories = []string{
	CategoryPending,
	CategoryCompleted,
	CategoryArchived,
	CategoryAggregated,
	CategoryTableAggregated,
	CategoryChart,
}

// PostCommit runs after a mutation has committed: it invalidates every
// report category and then publishes the mutation's event. It is the only
// caller of ReportCache.Invalidate.
type PostCommit struct {
	cache     ReportCache
	publisher EventPublisher
	logger    *logrus.Logger
}

func NewPostCommit(cache ReportCache, publisher EventPublisher, logger *logrus.Logger) *PostCommit {
	return &PostCommit{
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Run never fails the operation; the store already holds the new state.
func (p *PostCommit) Run(ctx context.Context, event *models.Event) {
	log := p.logger.WithField("component", "post_commit")

	for _, category := range reportCategories {
		if err := p.cache.Invalidate(ctx, category, ""); err != nil {
			log.WithError(err).WithField("category", category).Warn("Failed to invalidate report cache")
		}
	}

	if event == nil {
		return
	}
	if err := p.publisher.Publish(ctx, *event); err != nil {
		log.WithError(err).WithField("event", event.Type).Warn("Failed to publish event")
	}
}
