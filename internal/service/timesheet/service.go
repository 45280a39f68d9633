package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
	employeeRepo "github.com/courtline/CourtBookingService/internal/infra/storage/employee"
	timeentryRepo "github.com/courtline/CourtBookingService/internal/infra/storage/timeentry"
	"github.com/courtline/CourtBookingService/internal/service/timesheet/models"
)

// Service is the staff time clock, shift planning and payroll surface.
type Service struct {
	timeEntryRepo TimeEntryRepository
	employeeRepo  EmployeeRepository
	scheduleRepo  ScheduleRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService creates the timesheet service.
func NewService(
	timeEntryRepo TimeEntryRepository,
	employeeRepo EmployeeRepository,
	scheduleRepo ScheduleRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		timeEntryRepo: timeEntryRepo,
		employeeRepo:  employeeRepo,
		scheduleRepo:  scheduleRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// ClockIn opens a shift. An employee can hold at most one open entry.
func (s *Service) ClockIn(ctx context.Context, req *models.ClockRequest) (*models.TimeEntryResponse, error) {
	s.logger.Info("ClockIn: employee id=%d", req.EmployeeID)

	if _, err := s.getEmployee(ctx, "ClockIn", req.EmployeeID); err != nil {
		return nil, err
	}

	if _, err := s.timeEntryRepo.GetOpenByEmployee(ctx, req.EmployeeID); err == nil {
		s.logger.Warn("ClockIn: employee id=%d already has an open shift", req.EmployeeID)
		return nil, ErrAlreadyClockedIn
	} else if !errors.Is(err, timeentryRepo.ErrNoOpenEntry) {
		s.logger.Error("ClockIn: failed to check open shift for employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: ClockIn - failed to check open shift: %v", ErrInternal, err)
	}

	entry, err := s.timeEntryRepo.Create(ctx, &domain.TimeEntry{
		EmployeeID: req.EmployeeID,
		ClockIn:    s.timeProvider.Now(),
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, timeentryRepo.ErrOpenEntryExists) {
			return nil, ErrAlreadyClockedIn
		}
		s.logger.Error("ClockIn: repository error for employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: ClockIn - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClockIn: opened entry id=%d for employee id=%d", entry.ID, entry.EmployeeID)
	return models.FromDomainTimeEntry(entry), nil
}

// ClockOut closes the employee's open shift.
func (s *Service) ClockOut(ctx context.Context, req *models.ClockRequest) (*models.TimeEntryResponse, error) {
	s.logger.Info("ClockOut: employee id=%d", req.EmployeeID)

	entry, err := s.timeEntryRepo.GetOpenByEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, timeentryRepo.ErrNoOpenEntry) {
			s.logger.Warn("ClockOut: employee id=%d has no open shift", req.EmployeeID)
			return nil, ErrNotClockedIn
		}
		s.logger.Error("ClockOut: repository error for employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: ClockOut - repository error: %v", ErrInternal, err)
	}

	clockOut := s.timeProvider.Now()
	if err := s.timeEntryRepo.Close(ctx, entry.ID, clockOut); err != nil {
		if errors.Is(err, timeentryRepo.ErrNoOpenEntry) {
			return nil, ErrNotClockedIn
		}
		s.logger.Error("ClockOut: failed to close entry id=%d: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: ClockOut - failed to close entry: %v", ErrInternal, err)
	}

	entry.ClockOut = &clockOut
	s.logger.Info("ClockOut: closed entry id=%d for employee id=%d (%.2fh)",
		entry.ID, entry.EmployeeID, entry.DurationHours())
	return models.FromDomainTimeEntry(entry), nil
}

// Payroll sums closed time entries into hours and pay per employee
// over [From, To).
func (s *Service) Payroll(ctx context.Context, req *models.PayrollRequest) (*models.PayrollResponse, error) {
	s.logger.Info("Payroll: period %s to %s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if !req.To.After(req.From) {
		return nil, ErrInvalidPeriod
	}

	employees, err := s.payrollEmployees(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &models.PayrollResponse{
		From:  req.From,
		To:    req.To,
		Lines: make([]models.PayrollLine, 0, len(employees)),
	}

	for _, emp := range employees {
		entries, err := s.timeEntryRepo.ListByEmployeeBetween(ctx, emp.ID, req.From, req.To)
		if err != nil {
			s.logger.Error("Payroll: repository error for employee id=%d: %v", emp.ID, err)
			return nil, fmt.Errorf("%w: Payroll - repository error: %v", ErrInternal, err)
		}

		line := models.PayrollLine{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Position:     string(emp.Position),
			HourlyRate:   emp.HourlyRate,
			Entries:      len(entries),
		}
		for _, entry := range entries {
			line.Hours += entry.DurationHours()
			line.Pay += entry.Pay(emp.HourlyRate)
		}

		resp.Lines = append(resp.Lines, line)
		resp.TotalPay += line.Pay
	}

	s.logger.Info("Payroll: %d employees, total pay %.2f", len(resp.Lines), resp.TotalPay)
	return resp, nil
}

// CreateSchedule plans a shift for an employee.
func (s *Service) CreateSchedule(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("CreateSchedule: employee id=%d date=%s",
		req.EmployeeID, req.Date.Format(domain.DateFormat))

	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	if _, err := s.getEmployee(ctx, "CreateSchedule", req.EmployeeID); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.Create(ctx, &domain.WorkSchedule{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		s.logger.Error("CreateSchedule: repository error for employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: CreateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSchedule: created schedule id=%d", schedule.ID)
	return models.FromDomainSchedule(schedule), nil
}

// ListSchedules returns an employee's planned shifts over [from, to).
func (s *Service) ListSchedules(ctx context.Context, employeeID int64, from, to time.Time) (*models.ScheduleListResponse, error) {
	if !to.After(from) {
		return nil, ErrInvalidPeriod
	}

	schedules, err := s.scheduleRepo.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("ListSchedules: repository error for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: ListSchedules - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainScheduleList(schedules), nil
}

func (s *Service) payrollEmployees(ctx context.Context, req *models.PayrollRequest) ([]*domain.Employee, error) {
	if req.EmployeeID != nil {
		emp, err := s.getEmployee(ctx, "Payroll", *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		return []*domain.Employee{emp}, nil
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Payroll: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: Payroll - failed to list employees: %v", ErrInternal, err)
	}
	return employees, nil
}

func (s *Service) getEmployee(ctx context.Context, op string, id int64) (*domain.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("%s: employee id=%d not found", op, id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("%s: repository error for employee id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return emp, nil
}
