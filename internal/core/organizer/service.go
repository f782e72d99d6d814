// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organizer

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

func (service *Service) ListOrganizers(context context.Context) ([]*Organizer, error) {
	return service.repo.ListOrganizers(context)
}

func (service *Service) GetOrganizer(context context.Context, id int) (*Organizer, error) {
	if err := (&validate.Validator{}).ID(FieldID, id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetOrganizer(context, id)
}

func (service *Service) AddOrganizer(context context.Context, organizer *Organizer) (int, error) {
	validator := &validate.Validator{}
	checkOrganizer(validator, organizer)

	if err := validator.Err(); err != nil {
		return 0, err
	}

	id, err := service.repo.AddOrganizer(context, organizer)
	if err != nil {
		return 0, err
	}

	service.logger.Info("organizer_added", slog.Int("organizer_id", id), slog.String("name", organizer.Name))
	return id, nil
}

func (service *Service) EditOrganizer(context context.Context, id int, organizer *Organizer) error {
	organizer.ID = id
	validator := &validate.Validator{}
	validator.ID(FieldID, id)
	checkOrganizer(validator, organizer)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.EditOrganizer(context, organizer); err != nil {
		return err
	}

	service.logger.Info("organizer_updated", slog.Int("organizer_id", organizer.ID))
	return nil
}

func (service *Service) DeleteOrganizer(context context.Context, id int) error {
	if err := (&validate.Validator{}).ID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteOrganizer(context, id); err != nil {
		return err
	}

	service.logger.Warn("organizer_deleted", slog.Int("organizer_id", id))
	return nil
}

func checkOrganizer(validator *validate.Validator, organizer *Organizer) {
	validator.Required(FieldName, organizer.Name).MaxLen(FieldName, organizer.Name, maxNameLength)
	validator.NonNegative(FieldSocialCredit, organizer.SocialCredit)
}
