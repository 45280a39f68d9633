package employees

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/domain"
	employeestorage "github.com/courtline/CourtBookingService/internal/infra/storage/employee"
	"github.com/courtline/CourtBookingService/internal/service/employees/models"
)

type fakeEmployeeRepo struct {
	employees []*domain.Employee
	nextID    int64
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	f.nextID++
	created := *e
	created.ID = f.nextID
	f.employees = append(f.employees, &created)
	return &created, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, employeestorage.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]*domain.Employee, error) {
	var out []*domain.Employee
	for _, e := range f.employees {
		if e.Active {
			out = append(out, e)
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

func TestCreateEmployee(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeEmployeeRepo{}
	svc := NewService(repo, &fixedTime{now: now}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{
		Name:       "Mia Chen",
		Position:   "attendant",
		Phone:      "555-0102",
		HourlyRate: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "attendant", resp.Position)
	assert.Equal(t, now, resp.HireDate)
	assert.True(t, resp.Active)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{}, &fixedTime{now: time.Now()}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{
		Name: "", Position: "attendant",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateEmployeeRequest{
		Name: "Mia Chen", Position: "ceo",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateEmployeeRequest{
		Name: "Mia Chen", Position: "attendant", HourlyRate: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListEmployeesActiveOnly(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []*domain.Employee{
		{ID: 1, Name: "Mia Chen", Position: domain.PositionAttendant, Active: true},
		{ID: 2, Name: "Former Staff", Position: domain.PositionCleaner, Active: false},
	}}
	svc := NewService(repo, &fixedTime{now: time.Now()}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "Mia Chen", resp.Employees[0].Name)
}

func TestGetEmployeeNotFound(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{}, &fixedTime{now: time.Now()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
