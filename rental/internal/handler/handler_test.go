package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rentacar/rental-service/pkg/validate"
	"github.com/rentacar/rental-service/rental/internal/errs"
	"github.com/rentacar/rental-service/rental/internal/handler"
	"github.com/rentacar/rental-service/rental/internal/model"

	service_mocks "github.com/rentacar/rental-service/rental/internal/handler/mocks"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHandler_Rent(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	end := date(2024, 1, 13)
	okRental := model.Rental{
		Reservation: model.Reservation{
			ID:        7,
			ClientID:  "12345678A",
			Plate:     "1234BCD",
			StartDate: date(2024, 1, 10),
			EndDate:   &end,
		},
		Invoice: model.Invoice{
			Number:   99,
			ClientID: "12345678A",
			Total:    decimal.RequireFromString("164"),
			Lines: []model.InvoiceLine{
				{InvoiceNumber: 99, Concept: "3 dias de alquiler, vehiculo modelo 3", Amount: decimal.RequireFromString("76.5")},
				{InvoiceNumber: 99, Concept: "Deposito lleno de 50 litros de Gasolina 95", Amount: decimal.RequireFromString("87.5")},
			},
		},
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"clientId":"12345678A","vehiclePlate":"1234BCD","startDate":"2024-01-10","endDate":"2024-01-13"}`,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Rent(context.Background(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.RentRequest) (model.Rental, error) {
						require.Equal(t, "12345678A", req.ClientID)
						require.Equal(t, "1234BCD", req.VehiclePlate)
						require.Equal(t, date(2024, 1, 10), req.StartDate.Time)
						require.NotNil(t, req.EndDate)
						require.Equal(t, date(2024, 1, 13), req.EndDate.Time)
						return okRental, nil
					})
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"reservation":{"reservationId":7,"clientId":"12345678A","vehiclePlate":"1234BCD","startDate":"2024-01-10T00:00:00Z","endDate":"2024-01-13T00:00:00Z"},"invoice":{"invoiceNumber":99,"clientId":"12345678A","total":"164","lines":[{"concept":"3 dias de alquiler, vehiculo modelo 3","amount":"76.5"},{"concept":"Deposito lleno de 50 litros de Gasolina 95","amount":"87.5"}]}}`,
			},
		},
		{
			name:         "err. clientId required",
			body:         `{"vehiclePlate":"1234BCD","startDate":"2024-01-10"}`,
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. vehicle occupied",
			body: `{"clientId":"12345678A","vehiclePlate":"1234BCD","startDate":"2024-01-10","endDate":"2024-01-13"}`,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Rent(context.Background(), gomock.Any()).
					Return(model.Rental{}, errs.ErrVehicleOccupied)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"vehicle is not available"}`,
			},
		},
		{
			name: "err. client not found",
			body: `{"clientId":"00000000X","vehiclePlate":"1234BCD","startDate":"2024-01-10","endDate":"2024-01-13"}`,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Rent(context.Background(), gomock.Any()).
					Return(model.Rental{}, errs.ErrClientNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"client does not exist"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"clientId":"12345678A","vehiclePlate":"1234BCD","startDate":"2024-01-10","endDate":"2024-01-13"}`,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Rent(context.Background(), gomock.Any()).
					Return(model.Rental{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/rentals", h.Rent)

			r := httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Cancel(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	body := `{"clientId":"12345678A","vehiclePlate":"1234BCD","startDate":"2024-01-10","endDate":"2024-01-14"}`

	var tests = []struct {
		name         string
		rentalID     string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:     "ok",
			rentalID: "7",
			body:     body,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Cancel(context.Background(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.CancelRequest) error {
						require.Equal(t, "7", req.ReservationID)
						require.Equal(t, "12345678A", req.ClientID)
						require.Equal(t, date(2024, 1, 14), req.EndDate.Time)
						return nil
					})
			},
			response: response{
				expectedCode: http.StatusNoContent,
			},
		},
		{
			name:     "err. reservation not found",
			rentalID: "404",
			body:     body,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Cancel(context.Background(), gomock.Any()).
					Return(errs.ErrReservationNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"reservation does not exist"}`,
			},
		},
		{
			name:     "err. details mismatch",
			rentalID: "7",
			body:     body,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Cancel(context.Background(), gomock.Any()).
					Return(errs.ErrDataMismatch)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"provided details do not match the reservation"}`,
			},
		},
		{
			name:     "err. ambiguous invoice",
			rentalID: "7",
			body:     body,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					Cancel(context.Background(), gomock.Any()).
					Return(errs.ErrAmbiguousInvoice)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"multiple invoices match the reservation amount"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/rentals/:rentalId", h.Cancel)

			r := httptest.NewRequest(http.MethodDelete, "/rentals/"+tt.rentalID, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
