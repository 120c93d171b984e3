package service

import (
	"context"

	"github.com/parakita/backoffice/internal/dto"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/repository"
)

// CurrencyService covers the currency lookup CRUD
type CurrencyService struct {
	repo *repository.CurrencyRepository
}

func NewCurrencyService(repo *repository.CurrencyRepository) *CurrencyService {
	return &CurrencyService{repo: repo}
}

func (s *CurrencyService) currencySpec() query.Spec[model.Currency, dto.CurrencyResponse] {
	return query.Spec[model.Currency, dto.CurrencyResponse]{
		SearchColumns: []string{"code", "name"},
		Project: func(row *model.Currency) dto.CurrencyResponse {
			return toCurrencyResponse(row)
		},
	}
}

func (s *CurrencyService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.CurrencyResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.currencySpec())
}

func (s *CurrencyService) Get(ctx context.Context, id string) (*dto.CurrencyResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCurrencyResponse(row)
	return &resp, nil
}

func (s *CurrencyService) Create(ctx context.Context, req *dto.CurrencyRequest, actorID string) (*dto.CurrencyResponse, error) {
	exists, err := s.repo.CodeExists(ctx, req.Code, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.AlreadyExists("currency", req.Code)
	}

	row := &model.Currency{
		Code:   req.Code,
		Name:   req.Name,
		Symbol: req.Symbol,
	}
	row.StampCreated(actorID)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	resp := toCurrencyResponse(row)
	return &resp, nil
}

func (s *CurrencyService) Update(ctx context.Context, id string, req *dto.CurrencyRequest, actorID string) (*dto.CurrencyResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.CodeExists(ctx, req.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.AlreadyExists("currency", req.Code)
	}

	row.Code = req.Code
	row.Name = req.Name
	row.Symbol = req.Symbol
	row.StampUpdated(actorID)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}

	resp := toCurrencyResponse(row)
	return &resp, nil
}

func (s *CurrencyService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	row.MarkDeleted(actorID)
	return s.repo.Save(ctx, row)
}

// GenderService covers the gender lookup CRUD
type GenderService struct {
	repo *repository.GenderRepository
}

func NewGenderService(repo *repository.GenderRepository) *GenderService {
	return &GenderService{repo: repo}
}

func (s *GenderService) genderSpec() query.Spec[model.Gender, dto.GenderResponse] {
	return query.Spec[model.Gender, dto.GenderResponse]{
		SearchColumns: []string{"code", "name"},
		Project: func(row *model.Gender) dto.GenderResponse {
			return toGenderResponse(row)
		},
	}
}

func (s *GenderService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.GenderResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.genderSpec())
}

func (s *GenderService) Get(ctx context.Context, id string) (*dto.GenderResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toGenderResponse(row)
	return &resp, nil
}

func (s *GenderService) Create(ctx context.Context, req *dto.GenderRequest, actorID string) (*dto.GenderResponse, error) {
	exists, err := s.repo.CodeExists(ctx, req.Code, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.AlreadyExists("gender", req.Code)
	}

	row := &model.Gender{Code: req.Code, Name: req.Name}
	row.StampCreated(actorID)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	resp := toGenderResponse(row)
	return &resp, nil
}

func (s *GenderService) Update(ctx context.Context, id string, req *dto.GenderRequest, actorID string) (*dto.GenderResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.CodeExists(ctx, req.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.AlreadyExists("gender", req.Code)
	}

	row.Code = req.Code
	row.Name = req.Name
	row.StampUpdated(actorID)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}

	resp := toGenderResponse(row)
	return &resp, nil
}

func (s *GenderService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	row.MarkDeleted(actorID)
	return s.repo.Save(ctx, row)
}
