package service

import (
	"context"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rentacar/rental-service/rental/internal/errs"
	"github.com/rentacar/rental-service/rental/internal/model"
	"github.com/rentacar/rental-service/rental/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("engine"),
		repo: repo,
	}
}

// Rent books a vehicle for a client and raises the matching invoice in one
// transaction. With no end date the rental is priced and checked for overlap
// over the default duration, but the stored end date stays null.
func (s *Service) Rent(ctx context.Context, req model.RentRequest) (model.Rental, error) {
	if req.StartDate.IsZero() {
		return model.Rental{}, errs.ErrInvalidInput
	}
	period := req.Period()

	var rental model.Rental
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		ok, err := tx.ClientExists(ctx, req.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrClientNotFound
		}

		pricing, err := tx.VehiclePricing(ctx, req.VehiclePlate)
		if err != nil {
			return err
		}

		days := period.Days()
		if days < 1 {
			return errs.ErrNoRentalDays
		}

		occupied, err := tx.HasOverlap(ctx, req.VehiclePlate, period, 0)
		if err != nil {
			return err
		}
		if occupied {
			return errs.ErrVehicleOccupied
		}

		id, err := tx.NextReservationID(ctx)
		if err != nil {
			return err
		}
		res := model.Reservation{
			ID:        id,
			ClientID:  req.ClientID,
			Plate:     req.VehiclePlate,
			StartDate: period.Start,
			EndDate:   period.End,
		}
		if err := tx.InsertReservation(ctx, res); err != nil {
			return err
		}

		rentalCost := pricing.RentalCost(days)
		fuelCost := pricing.FuelCost()

		number, err := tx.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		inv := model.Invoice{
			Number:   number,
			ClientID: req.ClientID,
			Total:    rentalCost.Add(fuelCost),
		}
		if err := tx.InsertInvoice(ctx, inv); err != nil {
			return err
		}

		inv.Lines = []model.InvoiceLine{
			{InvoiceNumber: number, Concept: model.RentalLineConcept(days, pricing.ModelID), Amount: rentalCost},
			{InvoiceNumber: number, Concept: model.FuelLineConcept(pricing.TankCapacity, pricing.FuelType), Amount: fuelCost},
		}
		if err := tx.InsertInvoiceLines(ctx, inv.Lines); err != nil {
			return err
		}

		rental = model.Rental{Reservation: res, Invoice: inv}
		return nil
	})
	if err != nil {
		if !errs.IsBusiness(err) {
			// A FK violation on insert means the client reference went away
			// after the existence check passed.
			if isFKViolation(err) {
				return model.Rental{}, errs.ErrClientNotFound
			}
			s.log.Error("rent",
				zap.String("client", req.ClientID),
				zap.String("plate", req.VehiclePlate),
				zap.Error(err))
		}
		return model.Rental{}, err
	}
	return rental, nil
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
