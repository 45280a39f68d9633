package customers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/domain"
	customerstorage "github.com/courtline/CourtBookingService/internal/infra/storage/customer"
	"github.com/courtline/CourtBookingService/internal/service/customers/models"
	"github.com/courtline/CourtBookingService/pkg/ptr"
)

type fakeCustomerRepo struct {
	customers []*domain.Customer
	nextID    int64
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	f.nextID++
	created := *c
	created.ID = f.nextID
	f.customers = append(f.customers, &created)
	return &created, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customerstorage.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) List(_ context.Context, includeInactive bool) ([]*domain.Customer, error) {
	var out []*domain.Customer
	for _, c := range f.customers {
		if includeInactive || c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateCustomer(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeCustomerRepo{}
	svc := NewService(repo, &fixedTime{now: now}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		UserID: ptr.Ptr(int64(5)),
		Name:   "Lin Dan",
		Phone:  "555-0101",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.True(t, resp.Active)
	assert.Equal(t, now, resp.MembershipDate)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, int64(5), *resp.UserID)
}

func TestCreateCustomerValidation(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, &fixedTime{now: time.Now()}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name:   "Lin Dan",
		UserID: ptr.Ptr(int64(0)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListCustomersActiveOnly(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*domain.Customer{
		{ID: 1, Name: "Lin Dan", Active: true},
		{ID: 2, Name: "Old Member", Active: false},
	}}
	svc := NewService(repo, &fixedTime{now: time.Now()}, nopLogger{})

	resp, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, resp.Customers, 1)
	assert.Equal(t, "Lin Dan", resp.Customers[0].Name)

	resp, err = svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, resp.Customers, 2)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, &fixedTime{now: time.Now()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
