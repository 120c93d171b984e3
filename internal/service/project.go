package service

import (
	"encoding/json"

	"github.com/jinzhu/copier"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/model"
)

// Projection helpers from persistence models onto response DTOs. The flat
// parts go through copier; joined display names and child collections are
// mapped explicitly so missing lookups stay empty rather than dropping
// the row.

func toCurrencyResponse(row *model.Currency) dto.CurrencyResponse {
	var resp dto.CurrencyResponse
	_ = copier.Copy(&resp, row)
	return resp
}

func toGenderResponse(row *model.Gender) dto.GenderResponse {
	var resp dto.GenderResponse
	_ = copier.Copy(&resp, row)
	return resp
}

func toConfigResponse(row *model.Config) dto.ConfigResponse {
	return dto.ConfigResponse{
		ID:          row.ID,
		Name:        row.Name,
		Value:       json.RawMessage(row.Value),
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toVendorGroupResponse(row *model.VendorGroup) dto.GroupResponse {
	resp := dto.GroupResponse{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for i := range row.SubGroups {
		sub := &row.SubGroups[i]
		if sub.IsDeleted {
			continue
		}
		resp.SubGroups = append(resp.SubGroups, dto.SubGroupResponse{
			ID:   sub.ID,
			Code: sub.Code,
			Name: sub.Name,
		})
	}
	return resp
}

func toCustomerGroupResponse(row *model.CustomerGroup) dto.GroupResponse {
	resp := dto.GroupResponse{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for i := range row.SubGroups {
		sub := &row.SubGroups[i]
		if sub.IsDeleted {
			continue
		}
		resp.SubGroups = append(resp.SubGroups, dto.SubGroupResponse{
			ID:   sub.ID,
			Code: sub.Code,
			Name: sub.Name,
		})
	}
	return resp
}

func toVendorResponse(row *model.Vendor) dto.VendorResponse {
	var resp dto.VendorResponse
	_ = copier.Copy(&resp, row)
	resp.Contacts = nil

	if row.Currency != nil {
		resp.CurrencyName = row.Currency.Name
	}
	if row.VendorGroup != nil {
		resp.VendorGroupName = row.VendorGroup.Name
	}
	for i := range row.Contacts {
		contact := &row.Contacts[i]
		if contact.IsDeleted {
			continue
		}
		resp.Contacts = append(resp.Contacts, toVendorContactResponse(contact))
	}
	return resp
}

func toVendorContactResponse(row *model.VendorContact) dto.VendorContactResponse {
	resp := dto.VendorContactResponse{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Phone:     row.Phone,
		JobTitle:  row.JobTitle,
		GenderID:  row.GenderID,
	}
	if row.Gender != nil {
		resp.GenderName = row.Gender.Name
	}
	return resp
}

func toCustomerResponse(row *model.Customer) dto.CustomerResponse {
	var resp dto.CustomerResponse
	_ = copier.Copy(&resp, row)
	resp.Contacts = nil

	if row.Currency != nil {
		resp.CurrencyName = row.Currency.Name
	}
	if row.CustomerGroup != nil {
		resp.CustomerGroupName = row.CustomerGroup.Name
	}
	for i := range row.Contacts {
		contact := &row.Contacts[i]
		if contact.IsDeleted {
			continue
		}
		resp.Contacts = append(resp.Contacts, toCustomerContactResponse(contact))
	}
	return resp
}

func toCustomerContactResponse(row *model.CustomerContact) dto.CustomerContactResponse {
	resp := dto.CustomerContactResponse{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Phone:     row.Phone,
		JobTitle:  row.JobTitle,
		GenderID:  row.GenderID,
	}
	if row.Gender != nil {
		resp.GenderName = row.Gender.Name
	}
	return resp
}

func toRoleResponse(row *model.Role) dto.RoleResponse {
	resp := dto.RoleResponse{
		ID:   row.ID,
		Name: row.Name,
	}
	for i := range row.Claims {
		claim := &row.Claims[i]
		if claim.IsDeleted {
			continue
		}
		resp.Claims = append(resp.Claims, claim.ClaimValue)
	}
	return resp
}

func toUserResponse(row *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:             row.ID,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Email:          row.Email,
		IsBlocked:      row.IsBlocked,
		EmailConfirmed: row.EmailConfirmed,
		LastLogin:      row.LastLogin,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	for i := range row.Roles {
		role := &row.Roles[i]
		if role.IsDeleted {
			continue
		}
		resp.Roles = append(resp.Roles, toRoleResponse(role))
	}
	return resp
}
