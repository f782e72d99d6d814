// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package groom

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

func (service *Service) ListGrooms(context context.Context) ([]*Groom, error) {
	return service.repo.ListGrooms(context)
}

func (service *Service) GetGroom(context context.Context, id int) (*Groom, error) {
	if err := (&validate.Validator{}).ID(FieldID, id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetGroom(context, id)
}

func (service *Service) AddGroom(context context.Context, groom *Groom) (int, error) {
	validator := &validate.Validator{}
	checkGroom(validator, groom)

	if err := validator.Err(); err != nil {
		return 0, err
	}

	id, err := service.repo.AddGroom(context, groom)
	if err != nil {
		return 0, err
	}

	service.logger.Info("groom_added", slog.Int("groom_id", id), slog.String("name", groom.Name))
	return id, nil
}

func (service *Service) EditGroom(context context.Context, id int, groom *Groom) error {
	groom.ID = id
	validator := &validate.Validator{}
	validator.ID(FieldID, id)
	checkGroom(validator, groom)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.EditGroom(context, groom); err != nil {
		return err
	}

	service.logger.Info("groom_updated", slog.Int("groom_id", groom.ID))
	return nil
}

func (service *Service) DeleteGroom(context context.Context, id int) error {
	if err := (&validate.Validator{}).ID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteGroom(context, id); err != nil {
		return err
	}

	service.logger.Warn("groom_deleted", slog.Int("groom_id", id))
	return nil
}

func checkGroom(validator *validate.Validator, groom *Groom) {
	validator.Required(FieldName, groom.Name).MaxLen(FieldName, groom.Name, maxNameLength)
	validator.NonNegative(FieldAge, groom.Age)
}
