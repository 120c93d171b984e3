package service

import (
	"context"

	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/repository"
)

// RoleService manages roles and their permission claims
type RoleService struct {
	repo *repository.RoleRepository
}

func NewRoleService(repo *repository.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) roleSpec() query.Spec[model.Role, dto.RoleResponse] {
	return query.Spec[model.Role, dto.RoleResponse]{
		Preloads:      []string{"Claims"},
		SearchColumns: []string{"name"},
		Project: func(row *model.Role) dto.RoleResponse {
			return toRoleResponse(row)
		},
	}
}

func (s *RoleService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.RoleResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.roleSpec())
}

func (s *RoleService) Get(ctx context.Context, id string) (*dto.RoleResponse, error) {
	row, err := s.repo.GetWithClaims(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toRoleResponse(row)
	return &resp, nil
}

func (s *RoleService) Create(ctx context.Context, req *dto.RoleRequest, actorID string) (*dto.RoleResponse, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrRoleExists
	}

	if err := validateClaims(req.Claims); err != nil {
		return nil, err
	}

	row := &model.Role{Name: req.Name}
	row.StampCreated(actorID)
	for _, value := range req.Claims {
		claim := model.RoleClaim{ClaimValue: value}
		claim.StampCreated(actorID)
		row.Claims = append(row.Claims, claim)
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	resp := toRoleResponse(row)
	return &resp, nil
}

// Update renames the role and replaces its claim set
func (s *RoleService) Update(ctx context.Context, id string, req *dto.RoleRequest, actorID string) (*dto.RoleResponse, error) {
	row, err := s.repo.GetWithClaims(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, apperrors.ErrRoleExists
	}

	if err := validateClaims(req.Claims); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceClaims(ctx, row, req.Claims); err != nil {
		return nil, err
	}

	row.Name = req.Name
	row.Claims = nil
	row.StampUpdated(actorID)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *RoleService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetWithClaims(ctx, id)
	if err != nil {
		return err
	}

	row.MarkDeleted(actorID)
	for i := range row.Claims {
		if !row.Claims[i].IsDeleted {
			row.Claims[i].MarkDeleted(actorID)
		}
	}
	return s.repo.Save(ctx, row)
}

// validateClaims checks each claim against the known entity/action grid
func validateClaims(claims []string) error {
	valid := make(map[string]bool)
	for _, entity := range constants.AllEntities() {
		for _, action := range constants.AllActions() {
			valid[constants.Permission(entity, action)] = true
		}
	}
	for _, claim := range claims {
		if !valid[claim] {
			return apperrors.Validation("unknown claim " + claim)
		}
	}
	return nil
}
