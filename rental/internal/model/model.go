package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type RentRequest struct {
	ClientID     string `json:"clientId" validate:"required"`
	VehiclePlate string `json:"vehiclePlate" validate:"required"`
	StartDate    Date   `json:"startDate"`
	EndDate      *Date  `json:"endDate"`
}

func (r RentRequest) Period() Period {
	p := Period{Start: r.StartDate.Time}
	if r.EndDate != nil && !r.EndDate.IsZero() {
		end := r.EndDate.Time
		p.End = &end
	}
	return p
}

type CancelRequest struct {
	ReservationID string `json:"-" validate:"required"`
	ClientID      string `json:"clientId" validate:"required"`
	VehiclePlate  string `json:"vehiclePlate" validate:"required"`
	StartDate     Date   `json:"startDate"`
	EndDate       Date   `json:"endDate"`
}

type Reservation struct {
	ID        int64      `json:"reservationId" db:"idreserva"`
	ClientID  string     `json:"clientId" db:"cliente"`
	Plate     string     `json:"vehiclePlate" db:"matricula"`
	StartDate time.Time  `json:"startDate" db:"fecha_ini"`
	EndDate   *time.Time `json:"endDate,omitempty" db:"fecha_fin"`
}

func (r Reservation) Period() Period {
	return Period{Start: r.StartDate, End: r.EndDate}
}

type VehiclePricing struct {
	ModelID      int             `db:"id_modelo"`
	DailyPrice   decimal.Decimal `db:"precio_cada_dia"`
	TankCapacity int             `db:"capacidad_deposito"`
	FuelType     string          `db:"tipo_combustible"`
	FuelPrice    decimal.Decimal `db:"precio_por_litro"`
}

// RentalCost is the per-day charge over the whole period.
func (v VehiclePricing) RentalCost(days int64) decimal.Decimal {
	return v.DailyPrice.Mul(decimal.NewFromInt(days))
}

// FuelCost is a full tank at the fuel type's price per litre.
func (v VehiclePricing) FuelCost() decimal.Decimal {
	return v.FuelPrice.Mul(decimal.NewFromInt(int64(v.TankCapacity)))
}

type Invoice struct {
	Number   int64           `json:"invoiceNumber" db:"nrofactura"`
	ClientID string          `json:"clientId" db:"cliente"`
	Total    decimal.Decimal `json:"total" db:"importe"`
	Lines    []InvoiceLine   `json:"lines" db:"-"`
}

type InvoiceLine struct {
	InvoiceNumber int64           `json:"-" db:"nrofactura"`
	Concept       string          `json:"concept" db:"concepto"`
	Amount        decimal.Decimal `json:"amount" db:"importe"`
}

// Line concepts keep the legacy wording so invoices stay comparable with
// historical rows.
func RentalLineConcept(days int64, modelID int) string {
	return fmt.Sprintf("%d dias de alquiler, vehiculo modelo %d", days, modelID)
}

func FuelLineConcept(capacity int, fuelType string) string {
	return fmt.Sprintf("Deposito lleno de %d litros de %s", capacity, fuelType)
}

type Rental struct {
	Reservation Reservation `json:"reservation"`
	Invoice     Invoice     `json:"invoice"`
}
