package service

import (
	"context"

	"github.com/parakita/backoffice/internal/dto"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/repository"
	"gorm.io/datatypes"
)

// ConfigService manages the named JSON configuration records
type ConfigService struct {
	repo *repository.ConfigRepository
}

func NewConfigService(repo *repository.ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

func (s *ConfigService) configSpec() query.Spec[model.Config, dto.ConfigResponse] {
	return query.Spec[model.Config, dto.ConfigResponse]{
		SearchColumns: []string{"name", "description"},
		Project: func(row *model.Config) dto.ConfigResponse {
			return toConfigResponse(row)
		},
	}
}

func (s *ConfigService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.ConfigResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.configSpec())
}

func (s *ConfigService) Get(ctx context.Context, id string) (*dto.ConfigResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toConfigResponse(row)
	return &resp, nil
}

func (s *ConfigService) GetByName(ctx context.Context, name string) (*dto.ConfigResponse, error) {
	row, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.NotFound("config", name)
	}
	resp := toConfigResponse(row)
	return &resp, nil
}

// Upsert creates the record when the name is new and replaces its value
// otherwise.
func (s *ConfigService) Upsert(ctx context.Context, req *dto.ConfigRequest, actorID string) (*dto.ConfigResponse, error) {
	row, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	if row == nil {
		row = &model.Config{
			Name:        req.Name,
			Value:       datatypes.JSON(req.Value),
			Description: req.Description,
		}
		row.StampCreated(actorID)
		if err := s.repo.Create(ctx, row); err != nil {
			return nil, err
		}
	} else {
		row.Value = datatypes.JSON(req.Value)
		row.Description = req.Description
		row.StampUpdated(actorID)
		if err := s.repo.Save(ctx, row); err != nil {
			return nil, err
		}
	}

	resp := toConfigResponse(row)
	return &resp, nil
}

func (s *ConfigService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	row.MarkDeleted(actorID)
	return s.repo.Save(ctx, row)
}
