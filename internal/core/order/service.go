// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"log/slog"

	"github.com/taibuivan/wedplan/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListOrders(context context.Context) ([]*Order, error) {
	return service.repo.ListOrders(context)
}

func (service *Service) GetOrder(context context.Context, id int) (*Order, error) {
	if err := (&validate.Validator{}).ID(FieldID, id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetOrder(context, id)
}

func (service *Service) AddOrder(context context.Context, order *Order) (int, error) {
	validator := &validate.Validator{}
	checkOrder(validator, order)

	if err := validator.Err(); err != nil {
		return 0, err
	}

	id, err := service.repo.AddOrder(context, order)
	if err != nil {
		return 0, err
	}

	service.logger.Info("order_added",
		slog.Int("order_id", id),
		slog.Int("groom_id", order.GroomID),
		slog.Int("organizer_id", order.OrganizerID),
	)
	return id, nil
}

func (service *Service) EditOrder(context context.Context, id int, order *Order) error {
	order.ID = id
	validator := &validate.Validator{}
	validator.ID(FieldID, id)
	checkOrder(validator, order)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.EditOrder(context, order); err != nil {
		return err
	}

	service.logger.Info("order_updated", slog.Int("order_id", order.ID))
	return nil
}

func (service *Service) DeleteOrder(context context.Context, id int) error {
	if err := (&validate.Validator{}).ID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteOrder(context, id); err != nil {
		return err
	}

	service.logger.Warn("order_deleted", slog.Int("order_id", id))
	return nil
}

func checkOrder(validator *validate.Validator, order *Order) {
	validator.ID(FieldGroomID, order.GroomID).ID(FieldOrganizerID, order.OrganizerID)
	validator.Custom(FieldWeddingDate, order.WeddingDate.IsZero(), "This field is required")
	validator.NonNegative(FieldGuests, order.Guests).NonNegative(FieldPayment, order.Payment)
	validator.Required(FieldLocation, order.Location).MaxLen(FieldLocation, order.Location, maxLocationLength)
}
