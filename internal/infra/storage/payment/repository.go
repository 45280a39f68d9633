package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/courtline/CourtBookingService/internal/domain"
	"github.com/courtline/CourtBookingService/pkg/dbmetrics"
	"github.com/courtline/CourtBookingService/pkg/psqlbuilder"
)

var paymentColumns = []string{
	"id",
	"booking_id",
	"amount",
	"payment_method",
	"transaction_id",
	"notes",
	"processed_by",
	"payment_date",
}

// Repository is the payments storage layer.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a payments repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a payment record. Runs inside the record-payment
// transaction together with the booking's MarkPaid.
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("booking_id", "amount", "payment_method", "transaction_id", "notes", "processed_by").
		Values(p.BookingID, p.Amount, p.Method, p.TransactionID, p.Notes, p.ProcessedBy).
		Suffix("RETURNING id, payment_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var paymentDate sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &paymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.PaymentDate = paymentDate.Time
	return p, nil
}

// ListByBooking fetches payments recorded against a booking.
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("payment_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var paymentDate sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.Amount,
			&p.Method,
			&p.TransactionID,
			&p.Notes,
			&p.ProcessedBy,
			&paymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}

		p.PaymentDate = paymentDate.Time
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}
	return payments, nil
}
