package service

import (
	"context"

	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/model"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/repository"
	"github.com/parakita/backoffice/pkg/logger"
	"go.uber.org/zap"
)

const vendorSequence = "vendor"

// VendorService drives the vendor aggregate: the root record, its contact
// collection and the sequential vendor number.
type VendorService struct {
	repo      *repository.VendorRepository
	sequences *repository.SequenceRepository
}

func NewVendorService(repo *repository.VendorRepository, sequences *repository.SequenceRepository) *VendorService {
	return &VendorService{repo: repo, sequences: sequences}
}

func (s *VendorService) vendorSpec() query.Spec[model.Vendor, dto.VendorResponse] {
	return query.Spec[model.Vendor, dto.VendorResponse]{
		Preloads:      []string{"Currency", "VendorGroup"},
		SearchColumns: []string{"name", "number", "email", "city"},
		Relations: []query.Relation{
			query.NewRelation("Currency", "currency_id", "currencies"),
			query.NewRelation("VendorGroup", "vendor_group_id", "vendor_groups"),
		},
		Project: func(row *model.Vendor) dto.VendorResponse {
			return toVendorResponse(row)
		},
		Sorters: map[string]func(dto.VendorResponse) string{
			"Currency.Name":    func(d dto.VendorResponse) string { return d.CurrencyName },
			"VendorGroup.Name": func(d dto.VendorResponse) string { return d.VendorGroupName },
		},
	}
}

func (s *VendorService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.VendorResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.vendorSpec())
}

func (s *VendorService) Get(ctx context.Context, id string) (*dto.VendorResponse, error) {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toVendorResponse(row)
	return &resp, nil
}

// Create allocates the next vendor number and persists the aggregate with
// its initial contacts in one unit of work.
func (s *VendorService) Create(ctx context.Context, req *dto.CreateVendorRequest, actorID string) (*dto.VendorResponse, error) {
	number, err := s.sequences.Next(ctx, vendorSequence)
	if err != nil {
		return nil, err
	}

	row := &model.Vendor{
		Number:           number,
		Name:             req.Name,
		Address:          req.Address,
		City:             req.City,
		Phone:            req.Phone,
		Email:            req.Email,
		Website:          req.Website,
		CurrencyID:       req.CurrencyID,
		VendorGroupID:    req.VendorGroupID,
		VendorSubGroupID: req.VendorSubGroupID,
	}
	row.StampCreated(actorID)

	for _, c := range req.Contacts {
		contact := contactFromVendorRequest(&c)
		contact.StampCreated(actorID)
		if err := row.AddContact(contact); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	logger.GetLogger().Info("vendor created",
		zap.String("vendor_id", row.ID),
		zap.String("number", row.Number))

	return s.Get(ctx, row.ID)
}

func (s *VendorService) Update(ctx context.Context, id string, req *dto.UpdateVendorRequest, actorID string) (*dto.VendorResponse, error) {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Name = req.Name
	row.Address = req.Address
	row.City = req.City
	row.Phone = req.Phone
	row.Email = req.Email
	row.Website = req.Website
	row.CurrencyID = req.CurrencyID
	row.VendorGroupID = req.VendorGroupID
	row.VendorSubGroupID = req.VendorSubGroupID
	row.StampUpdated(actorID)

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the vendor and cascades to its contacts
func (s *VendorService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return err
	}
	row.SoftDelete(actorID)
	return s.repo.Save(ctx, row)
}

func (s *VendorService) AddContact(ctx context.Context, vendorID string, req *dto.VendorContactRequest, actorID string) (*dto.VendorResponse, error) {
	row, err := s.repo.GetAggregate(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	contact := contactFromVendorRequest(req)
	contact.StampCreated(actorID)
	if err := row.AddContact(contact); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, vendorID)
}

func (s *VendorService) UpdateContact(ctx context.Context, vendorID, contactID string, req *dto.VendorContactRequest, actorID string) (*dto.VendorResponse, error) {
	row, err := s.repo.GetAggregate(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if err := row.UpdateContact(contactID, contactFromVendorRequest(req), actorID); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, vendorID)
}

func (s *VendorService) RemoveContact(ctx context.Context, vendorID, contactID, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, vendorID)
	if err != nil {
		return err
	}
	if err := row.RemoveContact(contactID, actorID); err != nil {
		return err
	}
	return s.repo.Save(ctx, row)
}

func contactFromVendorRequest(req *dto.VendorContactRequest) model.VendorContact {
	return model.VendorContact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		JobTitle:  req.JobTitle,
		GenderID:  req.GenderID,
	}
}
