package service

import (
	"context"
	"io"
	"testing"

	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/shenikar/rescue_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	alerts    *mocks.MockAlertRepository
	terminals *mocks.MockTerminalRepository
	forms     *mocks.MockRescueFormRepository
	reports   *mocks.MockReportRepository
	cache     *mocks.MockReportCache
	publisher *mocks.MockEventPublisher
}

func newServiceMocks(t *testing.T) (serviceMocks, *PostCommit, *logrus.Logger) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		alerts:    mocks.NewMockAlertRepository(ctrl),
		terminals: mocks.NewMockTerminalRepository(ctrl),
		forms:     mocks.NewMockRescueFormRepository(ctrl),
		reports:   mocks.NewMockReportRepository(ctrl),
		cache:     mocks.NewMockReportCache(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return m, NewPostCommit(m.cache, m.publisher, logger), logger
}

// expectPostCommit expects every report category to be invalidated and,
// when eventType is set, one event of that type to be published.
func (m serviceMocks) expectPostCommit(eventType models.EventType) *gomock.Call {
	for _, category := range reportCategories {
		m.cache.EXPECT().Invalidate(gomock.Any(), category, "").Return(nil)
	}
	if eventType == "" {
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
		return nil
	}
	return m.publisher.EXPECT().
		Publish(gomock.Any(), eventOfType(eventType)).
		Return(nil)
}

// expectNoPostCommit asserts a rejected mutation leaves cache and observers alone.
func (m serviceMocks) expectNoPostCommit() {
	m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
}

type eventTypeMatcher models.EventType

func eventOfType(t models.EventType) gomock.Matcher { return eventTypeMatcher(t) }

func (m eventTypeMatcher) Matches(x any) bool {
	ev, ok := x.(models.Event)
	return ok && ev.Type == models.EventType(m)
}

func (m eventTypeMatcher) String() string { return "event of type " + string(m) }

var (
	dispatcher = models.Actor{ID: "dispatcher-1", Role: models.RoleDispatcher}
	admin      = models.Actor{ID: "admin-1", Role: models.RoleAdmin}
	focal      = models.Actor{ID: "focal-1", Role: models.RoleFocal}
)

func strPtr(s string) *string { return &s }

func statusPtr(s models.Status) *models.Status { return &s }

var ctx = context.Background()
