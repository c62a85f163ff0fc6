package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/queue"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/revalidate"
	"github.com/SeakMengs/PropDesk/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakePublisher struct {
	mu   sync.Mutex
	jobs []queue.MailJobPayload
	err  error
}

func (p *fakePublisher) PublishMailJob(_ context.Context, job queue.MailJobPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, job)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}

type fixture struct {
	db    *gorm.DB
	svc   *Service
	users []model.User
	store *revalidate.MemoryStore
	mail  *fakePublisher
}

func newFixture(t *testing.T, users int) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	logger := zap.NewNop().Sugar()
	store := revalidate.NewMemoryStore()
	mail := &fakePublisher{}

	svc := NewService(Dependencies{
		Repository:    repository.NewRepository(db, logger),
		Logger:        logger,
		Revalidator:   revalidate.NewCache(store, time.Minute, logger),
		MailPublisher: mail,
		FrontendURL:   "http://localhost:3000/",
	})

	return &fixture{
		db:    db,
		svc:   svc,
		users: testutil.SeedUsers(t, db, users),
		store: store,
		mail:  mail,
	}
}

// Request context acting as the i-th seeded user
func (f *fixture) as(i int) *auth.RequestContext {
	return &auth.RequestContext{ActorID: f.users[i].ID, IPAddress: "127.0.0.1", UserAgent: "go-test"}
}

func (f *fixture) count(t *testing.T, m any, where ...any) int64 {
	t.Helper()
	return testutil.Count(t, f.db, m, where...)
}

func (f *fixture) createProperty(t *testing.T, name string) *model.Property {
	t.Helper()

	property, err := f.svc.Property.CreateProperty(context.Background(), f.as(0), PropertyInput{
		Name:         name,
		Address:      "1 Main Street",
		City:         "Phnom Penh",
		PropertyType: constant.PropertyTypeResidential,
		TotalArea:    decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	return property
}

func (f *fixture) createUnit(t *testing.T, propertyId, number string, area int64, status constant.UnitStatus) *model.Unit {
	t.Helper()

	unit, err := f.svc.Unit.CreateUnit(context.Background(), f.as(0), UnitInput{
		PropertyID: propertyId,
		UnitNumber: number,
		Area:       decimal.NewFromInt(area),
		Rent:       decimal.NewFromInt(500),
		Status:     status,
	})
	require.NoError(t, err)
	return unit
}

func (f *fixture) createTenant(t *testing.T, email string) *model.Tenant {
	t.Helper()

	tenant, err := f.svc.Tenant.CreateTenant(context.Background(), f.as(0), TenantInput{
		FirstName: "Dara",
		LastName:  "Sok",
		Email:     email,
		Status:    constant.TenantStatusActive,
	})
	require.NoError(t, err)
	return tenant
}

func (f *fixture) createLease(t *testing.T, unitId, tenantId string) *model.Lease {
	t.Helper()

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	lease, err := f.svc.Lease.CreateLease(context.Background(), f.as(0), LeaseInput{
		UnitID:      unitId,
		TenantID:    tenantId,
		StartDate:   start,
		EndDate:     start.AddDate(1, 0, 0),
		MonthlyRent: decimal.NewFromInt(1000),
		Status:      constant.LeaseStatusActive,
	})
	require.NoError(t, err)
	return lease
}

func requireActionError(t *testing.T, err error, message string) {
	t.Helper()

	var actionErr *ActionError
	require.True(t, errors.As(err, &actionErr), "expected ActionError, got %v", err)
	require.Equal(t, message, actionErr.Message)
}
