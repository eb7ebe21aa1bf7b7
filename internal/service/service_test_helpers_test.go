package service_test

import (
	"context"
	"testing"

	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/datalab-ge/datalab-api/internal/cache"
	"github.com/datalab-ge/datalab-api/internal/repository"
	"github.com/datalab-ge/datalab-api/internal/service"
	"github.com/datalab-ge/datalab-api/internal/storage"
	"github.com/datalab-ge/datalab-api/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db           *gorm.DB
	cache        *cache.Memory
	requests     *service.ServiceRequestService
	contact      *service.ContactService
	testimonials *service.TestimonialService
	analytics    *service.AnalyticsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	c := cache.NewMemory()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	caseNumbers := service.NewCaseNumberService(repository.NewCaseSequenceRepository(db), logger)
	requests := service.NewServiceRequestService(
		repository.NewServiceRequestRepository(db),
		repository.NewStatusHistoryRepository(db),
		caseNumbers,
		c,
		logger,
	)
	testimonials := service.NewTestimonialService(repository.NewTestimonialRepository(db), store, c, logger)

	return &fixture{
		db:           db,
		cache:        c,
		requests:     requests,
		contact:      service.NewContactService(repository.NewContactMessageRepository(db), c, logger),
		testimonials: testimonials,
		analytics:    service.NewAnalyticsService(requests, testimonials, logger),
	}
}

func adminCtx() context.Context {
	return auth.WithAdminContext(context.Background(), &auth.AdminContext{Subject: "admin", Method: auth.MethodAPIKey})
}
