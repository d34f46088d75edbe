package handler

import (
	"context"

	"github.com/rentacar/rental-service/rental/internal/model"
	"github.com/rentacar/rental-service/rental/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	Rent(ctx context.Context, req model.RentRequest) (model.Rental, error)
	Cancel(ctx context.Context, req model.CancelRequest) error
}

var _ BookingService = (*service.Service)(nil)
