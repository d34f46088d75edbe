package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rentacar/rental-service/rental/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Repository runs a unit of work inside one store transaction.
type Repository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the transaction-scoped store gateway: existence lookups, pricing,
// sequence allocation and the reservation/invoice writes.
type Tx interface {
	ClientExists(ctx context.Context, clientID string) (bool, error)
	VehicleExists(ctx context.Context, plate string) (bool, error)
	VehiclePricing(ctx context.Context, plate string) (model.VehiclePricing, error)
	HasOverlap(ctx context.Context, plate string, period model.Period, excludeID int64) (bool, error)

	NextReservationID(ctx context.Context) (int64, error)
	NextInvoiceNumber(ctx context.Context) (int64, error)

	GetReservation(ctx context.Context, id int64) (model.Reservation, error)
	InsertReservation(ctx context.Context, res model.Reservation) error
	DeleteReservation(ctx context.Context, id int64) error

	InsertInvoice(ctx context.Context, inv model.Invoice) error
	InsertInvoiceLines(ctx context.Context, lines []model.InvoiceLine) error
	InvoicesByAmount(ctx context.Context, clientID string, amount decimal.Decimal) ([]int64, error)
	DeleteInvoice(ctx context.Context, number int64) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

// WithTx runs fn inside a serializable transaction. Serializable keeps the
// overlap check and the reservation insert for one vehicle atomic with respect
// to concurrent bookings of the same vehicle; a weaker level would let two
// calls both pass the check before either commits.
func (r *repository) WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	dbtx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer func() {
		if err := dbtx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			r.log.Error("tx rollback", zap.Error(err))
		}
	}()

	if err := fn(ctx, &storeTx{tx: dbtx, log: r.log}); err != nil {
		return err
	}
	return dbtx.Commit()
}
