package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/domain"
	employeeRepo "github.com/courtline/CourtBookingService/internal/infra/storage/employee"
	timeentryRepo "github.com/courtline/CourtBookingService/internal/infra/storage/timeentry"
	"github.com/courtline/CourtBookingService/internal/service/timesheet/models"
)

type fakeTimeEntryRepo struct {
	entries []*domain.TimeEntry
	nextID  int64
}

func (f *fakeTimeEntryRepo) Create(_ context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	f.nextID++
	e.ID = f.nextID
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeTimeEntryRepo) GetOpenByEmployee(_ context.Context, employeeID int64) (*domain.TimeEntry, error) {
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && e.IsOpen() {
			return e, nil
		}
	}
	return nil, timeentryRepo.ErrNoOpenEntry
}

func (f *fakeTimeEntryRepo) Close(_ context.Context, id int64, clockOut time.Time) error {
	for _, e := range f.entries {
		if e.ID == id && e.IsOpen() {
			e.ClockOut = &clockOut
			return nil
		}
	}
	return timeentryRepo.ErrNoOpenEntry
}

func (f *fakeTimeEntryRepo) ListByEmployeeBetween(_ context.Context, employeeID int64, from, to time.Time) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && !e.IsOpen() &&
			!e.ClockIn.Before(from) && e.ClockIn.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return e, nil
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

type fakeScheduleRepo struct {
	schedules []*domain.WorkSchedule
}

func (f *fakeScheduleRepo) Create(_ context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error) {
	s.ID = int64(len(f.schedules) + 1)
	f.schedules = append(f.schedules, s)
	return s, nil
}

func (f *fakeScheduleRepo) ListByEmployee(_ context.Context, employeeID int64, from, to time.Time) ([]*domain.WorkSchedule, error) {
	var out []*domain.WorkSchedule
	for _, s := range f.schedules {
		if s.EmployeeID == employeeID && !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
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

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(entries *fakeTimeEntryRepo, employees *fakeEmployeeRepo, clock *fixedTime) *Service {
	if clock == nil {
		clock = &fixedTime{now: now}
	}
	return NewService(entries, employees, &fakeScheduleRepo{}, clock, nopLogger{})
}

func attendant(id int64, rate float64) *domain.Employee {
	return &domain.Employee{
		ID: id, Name: "Sam", Position: domain.PositionAttendant,
		HourlyRate: rate, Active: true,
	}
}

func TestClockInAndOut(t *testing.T) {
	entries := &fakeTimeEntryRepo{}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{1: attendant(1, 15)}}
	clock := &fixedTime{now: now}

	svc := newService(entries, employees, clock)

	in, err := svc.ClockIn(context.Background(), &models.ClockRequest{EmployeeID: 1})
	require.NoError(t, err)
	assert.Equal(t, now, in.ClockIn)
	assert.Nil(t, in.ClockOut)

	// Second clock-in while the shift is open is rejected.
	_, err = svc.ClockIn(context.Background(), &models.ClockRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)

	clock.now = now.Add(4 * time.Hour)
	out, err := svc.ClockOut(context.Background(), &models.ClockRequest{EmployeeID: 1})
	require.NoError(t, err)
	require.NotNil(t, out.ClockOut)
	assert.InDelta(t, 4.0, out.Hours, 1e-9)

	// Clock-out without an open shift is rejected.
	_, err = svc.ClockOut(context.Background(), &models.ClockRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestClockInUnknownEmployee(t *testing.T) {
	svc := newService(&fakeTimeEntryRepo{}, &fakeEmployeeRepo{employees: map[int64]*domain.Employee{}}, nil)

	_, err := svc.ClockIn(context.Background(), &models.ClockRequest{EmployeeID: 99})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestPayroll(t *testing.T) {
	clockOut1 := now.Add(4 * time.Hour)
	clockOut2 := now.Add(30 * time.Hour)
	entries := &fakeTimeEntryRepo{entries: []*domain.TimeEntry{
		{ID: 1, EmployeeID: 1, ClockIn: now, ClockOut: &clockOut1},
		{ID: 2, EmployeeID: 1, ClockIn: now.Add(24 * time.Hour), ClockOut: &clockOut2},
		// Open entry: excluded from payroll.
		{ID: 3, EmployeeID: 1, ClockIn: now.Add(48 * time.Hour)},
	}, nextID: 3}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{1: attendant(1, 15)}}

	svc := newService(entries, employees, nil)

	resp, err := svc.Payroll(context.Background(), &models.PayrollRequest{
		From: now.Add(-time.Hour),
		To:   now.Add(72 * time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.Equal(t, int64(1), line.EmployeeID)
	assert.InDelta(t, 10.0, line.Hours, 1e-9) // 4h + 6h
	assert.InDelta(t, 150.0, line.Pay, 1e-9)
	assert.Equal(t, 2, line.Entries)
	assert.InDelta(t, 150.0, resp.TotalPay, 1e-9)
}

func TestPayrollInvalidPeriod(t *testing.T) {
	svc := newService(&fakeTimeEntryRepo{}, &fakeEmployeeRepo{employees: map[int64]*domain.Employee{}}, nil)

	_, err := svc.Payroll(context.Background(), &models.PayrollRequest{From: now, To: now})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestCreateScheduleValidation(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{1: attendant(1, 15)}}
	svc := newService(&fakeTimeEntryRepo{}, employees, nil)

	_, err := svc.CreateSchedule(context.Background(), &models.CreateScheduleRequest{
		EmployeeID: 1, Date: now, StartTime: now.Add(time.Hour), EndTime: now,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.CreateSchedule(context.Background(), &models.CreateScheduleRequest{
		EmployeeID: 1, Date: now, StartTime: now, EndTime: now.Add(8 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.EmployeeID)
}
