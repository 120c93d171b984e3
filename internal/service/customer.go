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

const customerSequence = "customer"

// CustomerService drives the customer aggregate, the mirror of the vendor
// side.
type CustomerService struct {
	repo      *repository.CustomerRepository
	sequences *repository.SequenceRepository
}

func NewCustomerService(repo *repository.CustomerRepository, sequences *repository.SequenceRepository) *CustomerService {
	return &CustomerService{repo: repo, sequences: sequences}
}

func (s *CustomerService) customerSpec() query.Spec[model.Customer, dto.CustomerResponse] {
	return query.Spec[model.Customer, dto.CustomerResponse]{
		Preloads:      []string{"Currency", "CustomerGroup"},
		SearchColumns: []string{"name", "number", "email", "city"},
		Relations: []query.Relation{
			query.NewRelation("Currency", "currency_id", "currencies"),
			query.NewRelation("CustomerGroup", "customer_group_id", "customer_groups"),
		},
		Project: func(row *model.Customer) dto.CustomerResponse {
			return toCustomerResponse(row)
		},
		Sorters: map[string]func(dto.CustomerResponse) string{
			"Currency.Name":      func(d dto.CustomerResponse) string { return d.CurrencyName },
			"CustomerGroup.Name": func(d dto.CustomerResponse) string { return d.CustomerGroupName },
		},
	}
}

func (s *CustomerService) List(ctx context.Context, opts query.Options) (*query.PagedList[dto.CustomerResponse], error) {
	return query.Run(ctx, s.repo.DB(), opts, s.customerSpec())
}

func (s *CustomerService) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(row)
	return &resp, nil
}

func (s *CustomerService) Create(ctx context.Context, req *dto.CreateCustomerRequest, actorID string) (*dto.CustomerResponse, error) {
	number, err := s.sequences.Next(ctx, customerSequence)
	if err != nil {
		return nil, err
	}

	row := &model.Customer{
		Number:             number,
		Name:               req.Name,
		Address:            req.Address,
		City:               req.City,
		Phone:              req.Phone,
		Email:              req.Email,
		Website:            req.Website,
		CurrencyID:         req.CurrencyID,
		CustomerGroupID:    req.CustomerGroupID,
		CustomerSubGroupID: req.CustomerSubGroupID,
	}
	row.StampCreated(actorID)

	for _, c := range req.Contacts {
		contact := contactFromCustomerRequest(&c)
		contact.StampCreated(actorID)
		if err := row.AddContact(contact); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	logger.GetLogger().Info("customer created",
		zap.String("customer_id", row.ID),
		zap.String("number", row.Number))

	return s.Get(ctx, row.ID)
}

func (s *CustomerService) Update(ctx context.Context, id string, req *dto.UpdateCustomerRequest, actorID string) (*dto.CustomerResponse, error) {
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
	row.CustomerGroupID = req.CustomerGroupID
	row.CustomerSubGroupID = req.CustomerSubGroupID
	row.StampUpdated(actorID)

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the customer and cascades to its contacts
func (s *CustomerService) Delete(ctx context.Context, id, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return err
	}
	row.SoftDelete(actorID)
	return s.repo.Save(ctx, row)
}

func (s *CustomerService) AddContact(ctx context.Context, customerID string, req *dto.CustomerContactRequest, actorID string) (*dto.CustomerResponse, error) {
	row, err := s.repo.GetAggregate(ctx, customerID)
	if err != nil {
		return nil, err
	}

	contact := contactFromCustomerRequest(req)
	contact.StampCreated(actorID)
	if err := row.AddContact(contact); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, customerID)
}

func (s *CustomerService) UpdateContact(ctx context.Context, customerID, contactID string, req *dto.CustomerContactRequest, actorID string) (*dto.CustomerResponse, error) {
	row, err := s.repo.GetAggregate(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := row.UpdateContact(contactID, contactFromCustomerRequest(req), actorID); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(ctx, customerID)
}

func (s *CustomerService) RemoveContact(ctx context.Context, customerID, contactID, actorID string) error {
	row, err := s.repo.GetAggregate(ctx, customerID)
	if err != nil {
		return err
	}
	if err := row.RemoveContact(contactID, actorID); err != nil {
		return err
	}
	return s.repo.Save(ctx, row)
}

func contactFromCustomerRequest(req *dto.CustomerContactRequest) model.CustomerContact {
	return model.CustomerContact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		JobTitle:  req.JobTitle,
		GenderID:  req.GenderID,
	}
}
