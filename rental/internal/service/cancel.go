package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rentacar/rental-service/rental/internal/errs"
	"github.com/rentacar/rental-service/rental/internal/model"
	"github.com/rentacar/rental-service/rental/internal/repository"
)

// Cancel undoes a reservation and removes its invoice, in one transaction.
// The caller must resupply the reservation's own details as a confirmation;
// the stored effective end date is reconstructed the same way Rent computed it.
func (s *Service) Cancel(ctx context.Context, req model.CancelRequest) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return errs.ErrInvalidInput
	}
	if days := int64(req.EndDate.Sub(req.StartDate.Time) / (24 * time.Hour)); days < 1 {
		return errs.ErrNoRentalDays
	}
	id, err := strconv.ParseInt(req.ReservationID, 10, 64)
	if err != nil {
		return errs.ErrReservationNotFound
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		res, err := tx.GetReservation(ctx, id)
		if err != nil {
			return err
		}
		stored := res.Period()
		if res.ClientID != req.ClientID || res.Plate != req.VehiclePlate ||
			!res.StartDate.Equal(req.StartDate.Time) ||
			!stored.EffectiveEnd().Equal(req.EndDate.Time) {
			return errs.ErrDataMismatch
		}

		ok, err := tx.ClientExists(ctx, req.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrClientNotFound
		}
		ok, err = tx.VehicleExists(ctx, req.VehiclePlate)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrVehicleNotFound
		}

		// Re-validate the interval against every other reservation of the
		// vehicle. The row being cancelled is excluded so its own existence
		// never blocks the cancellation.
		occupied, err := tx.HasOverlap(ctx, res.Plate, stored, res.ID)
		if err != nil {
			return err
		}
		if occupied {
			return errs.ErrVehicleOccupied
		}

		// The invoice carries no reservation reference, so it is located by
		// value: recompute the expected total from the reservation's own day
		// count and match on (client, amount).
		resDays := stored.Days()
		if resDays < 1 {
			resDays = 1
		}
		pricing, err := tx.VehiclePricing(ctx, res.Plate)
		if err != nil {
			return err
		}
		total := pricing.RentalCost(resDays).Add(pricing.FuelCost())

		numbers, err := tx.InvoicesByAmount(ctx, res.ClientID, total)
		if err != nil {
			return err
		}
		switch len(numbers) {
		case 0:
			s.log.Warn("no invoice matched, cancelling reservation only",
				zap.Int64("reservation", res.ID),
				zap.String("amount", total.String()))
		case 1:
			if err := tx.DeleteInvoice(ctx, numbers[0]); err != nil {
				return err
			}
		default:
			return errs.ErrAmbiguousInvoice
		}

		return tx.DeleteReservation(ctx, res.ID)
	})
	if err != nil && !errs.IsBusiness(err) {
		s.log.Error("cancel",
			zap.String("reservation", req.ReservationID),
			zap.String("client", req.ClientID),
			zap.String("plate", req.VehiclePlate),
			zap.Error(err))
	}
	return err
}
