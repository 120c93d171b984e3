package service

import (
	"context"

	"github.com/parakita/backoffice/internal/dto"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/model"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/repository"
)

// VendorGroupService manages vendor groups and their sub-group children
type VendorGroupService struct {
	repo *repository.VendorGroupRepository
}

func NewVendorGroupService(repo *repository.VendorGroupRepository) *VendorGroupService {
	return &VendorGroupService{repo: repo}
}

func (s *VendorGroupService) groupSpec() query.Spec[model.VendorGroup, dto.GroupResponse] {
	return query.Spec[model.VendorGroup, dto.GroupResponse]{
		Preloads:      []string{"SubGroups"},
		SearchColumns: []string{"code", "name"},
		Project: func(row *model.VendorGroup) dto.GroupResponse {
			return toVendorGroupResponse(row)
		},
	}
}

func (s *VendorGroupService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.GroupResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.groupSpec())
}

func (s *VendorGroupService) Get(ctx context.Context, id string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toVendorGroupResponse(row)
	return &resp, nil
}

func (s *VendorGroupService) Create(ctx context.Context, req *dto.GroupRequest, actorID string) (*dto.GroupResponse, error) {
	existing, err := s.findByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing {
		return nil, apperrors.AlreadyExists("vendor group", req.Code)
	}

	row := &model.VendorGroup{Code: req.Code, Name: req.Name}
	row.StampCreated(actorID)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	resp := toVendorGroupResponse(row)
	return &resp, nil
}

func (s *VendorGroupService) Update(ctx context.Context, id string, req *dto.GroupRequest, actorID string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Code = req.Code
	row.Name = req.Name
	row.StampUpdated(actorID)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the group and cascades to its sub groups
func (s *VendorGroupService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return err
	}
	row.SoftDelete(actorID)
	return s.repo.Save(ctx, row)
}

func (s *VendorGroupService) AddSubGroup(ctx context.Context, groupID string, req *dto.SubGroupRequest, actorID string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, groupID)
	if err != nil {
		return nil, err
	}

	sub := model.VendorSubGroup{Code: req.Code, Name: req.Name}
	sub.StampCreated(actorID)
	if err := row.AddSubGroup(sub); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, groupID)
}

func (s *VendorGroupService) UpdateSubGroup(ctx context.Context, groupID, subID string, req *dto.SubGroupRequest, actorID string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, groupID)
	if err != nil {
		return nil, err
	}

	update := model.VendorSubGroup{Code: req.Code, Name: req.Name}
	if err := row.UpdateSubGroup(subID, update, actorID); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, groupID)
}

func (s *VendorGroupService) RemoveSubGroup(ctx context.Context, groupID, subID, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, groupID)
	if err != nil {
		return err
	}
	if err := row.RemoveSubGroup(subID, actorID); err != nil {
		return err
	}
	return s.repo.Save(ctx, row)
}

func (s *VendorGroupService) findByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.repo.DB().WithContext(ctx).Model(&model.VendorGroup{}).
		Where("LOWER(code) = LOWER(?) AND is_deleted = ?", code, false).
		Count(&count).Error
	return count > 0, err
}

// CustomerGroupService mirrors the vendor group side
type CustomerGroupService struct {
	repo *repository.CustomerGroupRepository
}

func NewCustomerGroupService(repo *repository.CustomerGroupRepository) *CustomerGroupService {
	return &CustomerGroupService{repo: repo}
}

func (s *CustomerGroupService) groupSpec() query.Spec[model.CustomerGroup, dto.GroupResponse] {
	return query.Spec[model.CustomerGroup, dto.GroupResponse]{
		Preloads:      []string{"SubGroups"},
		SearchColumns: []string{"code", "name"},
		Project: func(row *model.CustomerGroup) dto.GroupResponse {
			return toCustomerGroupResponse(row)
		},
	}
}

func (s *CustomerGroupService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.GroupResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.groupSpec())
}

func (s *CustomerGroupService) Get(ctx context.Context, id string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCustomerGroupResponse(row)
	return &resp, nil
}

func (s *CustomerGroupService) Create(ctx context.Context, req *dto.GroupRequest, actorID string) (*dto.GroupResponse, error) {
	existing, err := s.findByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing {
		return nil, apperrors.AlreadyExists("customer group", req.Code)
	}

	row := &model.CustomerGroup{Code: req.Code, Name: req.Name}
	row.StampCreated(actorID)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	resp := toCustomerGroupResponse(row)
	return &resp, nil
}

func (s *CustomerGroupService) Update(ctx context.Context, id string, req *dto.GroupRequest, actorID string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Code = req.Code
	row.Name = req.Name
	row.StampUpdated(actorID)
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the group and cascades to its sub groups
func (s *CustomerGroupService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return err
	}
	row.SoftDelete(actorID)
	return s.repo.Save(ctx, row)
}

func (s *CustomerGroupService) AddSubGroup(ctx context.Context, groupID string, req *dto.SubGroupRequest, actorID string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, groupID)
	if err != nil {
		return nil, err
	}

	sub := model.CustomerSubGroup{Code: req.Code, Name: req.Name}
	sub.StampCreated(actorID)
	if err := row.AddSubGroup(sub); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, groupID)
}

func (s *CustomerGroupService) UpdateSubGroup(ctx context.Context, groupID, subID string, req *dto.SubGroupRequest, actorID string) (*dto.GroupResponse, error) {
	row, err := s.repo.GetAggregate(ctx, groupID)
	if err != nil {
		return nil, err
	}

	update := model.CustomerSubGroup{Code: req.Code, Name: req.Name}
	if err := row.UpdateSubGroup(subID, update, actorID); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, groupID)
}

func (s *CustomerGroupService) RemoveSubGroup(ctx context.Context, groupID, subID, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, groupID)
	if err != nil {
		return err
	}
	if err := row.RemoveSubGroup(subID, actorID); err != nil {
		return err
	}
	return s.repo.Save(ctx, row)
}

func (s *CustomerGroupService) findByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.repo.DB().WithContext(ctx).Model(&model.CustomerGroup{}).
		Where("LOWER(code) = LOWER(?) AND is_deleted = ?", code, false).
		Count(&count).Error
	return count > 0, err
}
