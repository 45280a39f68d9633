package workschedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/courtline/CourtBookingService/internal/domain"
	"github.com/courtline/CourtBookingService/pkg/dbmetrics"
	"github.com/courtline/CourtBookingService/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"employee_id",
	"date",
	"start_time",
	"end_time",
	"notes",
	"created_at",
	"updated_at",
}

// Repository is the work schedules storage layer.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a work schedules repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a planned shift.
func (r *Repository) Create(ctx context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("work_schedules").
		Columns("employee_id", "date", "start_time", "end_time", "notes").
		Values(s.EmployeeID, s.Date, s.StartTime, s.EndTime, s.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// ListByEmployee fetches an employee's shifts between two dates.
func (r *Repository) ListByEmployee(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("work_schedules").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.WorkSchedule, 0)
	for rows.Next() {
		var s domain.WorkSchedule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.EmployeeID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEmployee - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		schedules = append(schedules, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - rows error: %v", ErrScanRow, err)
	}
	return schedules, nil
}
