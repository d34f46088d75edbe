package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rentacar/rental-service/rental/internal/errs"
	"github.com/rentacar/rental-service/rental/internal/model"
)

const (
	clientsTableName      = `clientes`
	vehiclesTableName     = `vehiculos`
	modelsTableName       = `modelos`
	fuelPriceTableName    = `precio_combustible`
	reservationsTableName = `reservas`
	invoicesTableName     = `facturas`
	invoiceLinesTableName = `lineas_factura`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type storeTx struct {
	tx  *sqlx.Tx
	log *zap.Logger
}

func (t *storeTx) ClientExists(ctx context.Context, clientID string) (bool, error) {
	return t.exists(ctx, clientsTableName, sq.Eq{"nif": clientID})
}

func (t *storeTx) VehicleExists(ctx context.Context, plate string) (bool, error) {
	return t.exists(ctx, vehiclesTableName, sq.Eq{"matricula": plate})
}

func (t *storeTx) exists(ctx context.Context, table string, cond sq.Eq) (bool, error) {
	query, args, err := qb.Select("1").From(table).Where(cond).Limit(1).ToSql()
	if err != nil {
		return false, err
	}
	var one int
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrapf(err, "exists %s", table)
	}
	return true, nil
}

func (t *storeTx) VehiclePricing(ctx context.Context, plate string) (model.VehiclePricing, error) {
	query, args, err := qb.Select("m.id_modelo", "m.precio_cada_dia", "m.capacidad_deposito", "m.tipo_combustible", "pc.precio_por_litro").
		From(vehiclesTableName + " v").
		Join(fmt.Sprintf("%s m on v.id_modelo = m.id_modelo", modelsTableName)).
		Join(fmt.Sprintf("%s pc on m.tipo_combustible = pc.tipo_combustible", fuelPriceTableName)).
		Where(sq.Eq{"v.matricula": plate}).
		ToSql()
	if err != nil {
		return model.VehiclePricing{}, err
	}
	var vp model.VehiclePricing
	if err := t.tx.GetContext(ctx, &vp, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.VehiclePricing{}, errs.ErrVehicleNotFound
		}
		return model.VehiclePricing{}, errors.Wrap(err, "vehicle pricing")
	}
	return vp, nil
}

// HasOverlap applies the strict half-open interval predicate against stored
// reservations, normalizing a null fecha_fin to fecha_ini + the default rental
// duration. excludeID <= 0 means "check against all rows".
func (t *storeTx) HasOverlap(ctx context.Context, plate string, period model.Period, excludeID int64) (bool, error) {
	q := fmt.Sprintf(`
	select exists (
		select 1 from %s
		where matricula = $1
		  and fecha_ini < $2
		  and coalesce(fecha_fin, fecha_ini + make_interval(days => $3)) > $4
		  and ($5 <= 0 or idreserva <> $5)
	)`, reservationsTableName)

	var occupied bool
	err := t.tx.QueryRowContext(ctx, q,
		plate, period.EffectiveEnd(), model.DefaultRentalDays, period.Start, excludeID,
	).Scan(&occupied)
	if err != nil {
		return false, errors.Wrap(err, "overlap check")
	}
	return occupied, nil
}

func (t *storeTx) NextReservationID(ctx context.Context) (int64, error) {
	return t.nextval(ctx, "seq_reservas")
}

func (t *storeTx) NextInvoiceNumber(ctx context.Context) (int64, error) {
	return t.nextval(ctx, "seq_num_fact")
}

func (t *storeTx) nextval(ctx context.Context, seq string) (int64, error) {
	var id int64
	q := fmt.Sprintf("select nextval('%s')", seq)
	if err := t.tx.QueryRowContext(ctx, q).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "nextval %s", seq)
	}
	return id, nil
}

func (t *storeTx) GetReservation(ctx context.Context, id int64) (model.Reservation, error) {
	query, args, err := qb.Select("idreserva", "cliente", "matricula", "fecha_ini", "fecha_fin").
		From(reservationsTableName).
		Where(sq.Eq{"idreserva": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := t.tx.GetContext(ctx, &res, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, errors.Wrap(err, "get reservation")
	}
	return res, nil
}

func (t *storeTx) InsertReservation(ctx context.Context, res model.Reservation) error {
	query, args, err := qb.Insert(reservationsTableName).
		Columns("idreserva", "cliente", "matricula", "fecha_ini", "fecha_fin").
		Values(res.ID, res.ClientID, res.Plate, res.StartDate, res.EndDate).
		ToSql()
	if err != nil {
		return err
	}
	return t.execOne(ctx, query, args, "insert reservation")
}

func (t *storeTx) DeleteReservation(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(reservationsTableName).Where(sq.Eq{"idreserva": id}).ToSql()
	if err != nil {
		return err
	}
	return t.execOne(ctx, query, args, "delete reservation")
}

func (t *storeTx) InsertInvoice(ctx context.Context, inv model.Invoice) error {
	query, args, err := qb.Insert(invoicesTableName).
		Columns("nrofactura", "cliente", "importe").
		Values(inv.Number, inv.ClientID, inv.Total).
		ToSql()
	if err != nil {
		return err
	}
	return t.execOne(ctx, query, args, "insert invoice")
}

func (t *storeTx) InsertInvoiceLines(ctx context.Context, lines []model.InvoiceLine) error {
	ins := qb.Insert(invoiceLinesTableName).Columns("nrofactura", "concepto", "importe")
	for _, l := range lines {
		ins = ins.Values(l.InvoiceNumber, l.Concept, l.Amount)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	n, err := t.exec(ctx, query, args)
	if err != nil {
		return errors.Wrap(err, "insert invoice lines")
	}
	if n != int64(len(lines)) {
		return errors.Errorf("insert invoice lines: %d of %d rows affected", n, len(lines))
	}
	return nil
}

func (t *storeTx) InvoicesByAmount(ctx context.Context, clientID string, amount decimal.Decimal) ([]int64, error) {
	query, args, err := qb.Select("nrofactura").
		From(invoicesTableName).
		Where(sq.Eq{"cliente": clientID}).
		Where(sq.Eq{"importe": amount}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var numbers []int64
	if err := t.tx.SelectContext(ctx, &numbers, query, args...); err != nil {
		return nil, errors.Wrap(err, "invoices by amount")
	}
	return numbers, nil
}

func (t *storeTx) DeleteInvoice(ctx context.Context, number int64) error {
	query, args, err := qb.Delete(invoiceLinesTableName).Where(sq.Eq{"nrofactura": number}).ToSql()
	if err != nil {
		return err
	}
	if _, err := t.exec(ctx, query, args); err != nil {
		return errors.Wrap(err, "delete invoice lines")
	}

	query, args, err = qb.Delete(invoicesTableName).Where(sq.Eq{"nrofactura": number}).ToSql()
	if err != nil {
		return err
	}
	return t.execOne(ctx, query, args, "delete invoice")
}

func (t *storeTx) exec(ctx context.Context, query string, args []interface{}) (int64, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		t.log.Error("exec", zap.String("q", query), zap.Any("args", args))
		return 0, err
	}
	return res.RowsAffected()
}

func (t *storeTx) execOne(ctx context.Context, query string, args []interface{}, op string) error {
	n, err := t.exec(ctx, query, args)
	if err != nil {
		return errors.Wrap(err, op)
	}
	if n == 0 {
		return errors.Errorf("%s: no rows affected", op)
	}
	return nil
}
