package timeentry

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

var timeEntryColumns = []string{
	"id",
	"employee_id",
	"clock_in",
	"clock_out",
	"notes",
	"created_at",
	"updated_at",
}

// Repository is the time entries storage layer.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a time entries repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create opens a new time entry for an employee.
func (r *Repository) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_entries").
		Columns("employee_id", "clock_in", "clock_out", "notes").
		Values(e.EmployeeID, e.ClockIn, e.ClockOut, e.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time
	return e, nil
}

// GetOpenByEmployee fetches the employee's open entry, if any.
func (r *Repository) GetOpenByEmployee(ctx context.Context, employeeID int64) (*domain.TimeEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeEntryColumns...).
		From("time_entries").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where("clock_out IS NULL").
		OrderBy("clock_in DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanTimeEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNoOpenEntry
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenByEmployee - scan time entry: %v", ErrScanRow, err)
	}
	return e, nil
}

// Close stamps clock_out on an open entry.
func (r *Repository) Close(ctx context.Context, id int64, clockOut time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_entries").
		Set("clock_out", clockOut).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("clock_out IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNoOpenEntry
	}
	return nil
}

// ListByEmployeeBetween fetches closed entries for an employee whose
// clock-in falls inside [from, to). Used by the payroll report.
func (r *Repository) ListByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.TimeEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeEntryColumns...).
		From("time_entries").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"clock_in": from}).
		Where(squirrel.Lt{"clock_in": to}).
		Where("clock_out IS NOT NULL").
		OrderBy("clock_in ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEmployeeBetween - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeBetween - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTimeEntry(row rowScanner) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.ClockIn,
		&e.ClockOut,
		&e.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time
	return &e, nil
}
