package booking

import (
	"context"
	"database/sql"

	"github.com/courtline/CourtBookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works the
// same over *sql.DB, the metrics wrapper and open transactions.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
