package model

import (
	"strings"

	apperrors "github.com/parakita/backoffice/internal/errors"
)

// VendorGroup owns its sub-group collection; sub-group names must be
// unique among active children, case-insensitively.
type VendorGroup struct {
	Base
	Code string `gorm:"column:code;size:32;not null;uniqueIndex"`
	Name string `gorm:"column:name;size:128;not null;index"`

	SubGroups []VendorSubGroup `gorm:"foreignKey:VendorGroupID"`
}

func (VendorGroup) TableName() string { return "vendor_groups" }

type VendorSubGroup struct {
	Base
	VendorGroupID string `gorm:"column:vendor_group_id;size:20;not null;index"`
	Code          string `gorm:"column:code;size:32;not null"`
	Name          string `gorm:"column:name;size:128;not null"`
}

func (VendorSubGroup) TableName() string { return "vendor_sub_groups" }

func (g *VendorGroup) AddSubGroup(sub VendorSubGroup) error {
	if err := g.checkSubGroupUnique(sub.Name, ""); err != nil {
		return err
	}
	sub.VendorGroupID = g.ID
	g.SubGroups = append(g.SubGroups, sub)
	return nil
}

func (g *VendorGroup) UpdateSubGroup(id string, update VendorSubGroup, actorID string) error {
	idx := g.subGroupIndex(id)
	if idx < 0 {
		return apperrors.NotFound("vendor sub group", id)
	}
	if err := g.checkSubGroupUnique(update.Name, id); err != nil {
		return err
	}
	sub := &g.SubGroups[idx]
	sub.Code = update.Code
	sub.Name = update.Name
	sub.StampUpdated(actorID)
	return nil
}

func (g *VendorGroup) RemoveSubGroup(id, actorID string) error {
	idx := g.subGroupIndex(id)
	if idx < 0 {
		return apperrors.NotFound("vendor sub group", id)
	}
	g.SubGroups[idx].MarkDeleted(actorID)
	return nil
}

// SoftDelete cascades to all active sub groups
func (g *VendorGroup) SoftDelete(actorID string) {
	g.MarkDeleted(actorID)
	for i := range g.SubGroups {
		if !g.SubGroups[i].IsDeleted {
			g.SubGroups[i].MarkDeleted(actorID)
		}
	}
}

func (g *VendorGroup) subGroupIndex(id string) int {
	for i := range g.SubGroups {
		if g.SubGroups[i].ID == id && !g.SubGroups[i].IsDeleted {
			return i
		}
	}
	return -1
}

func (g *VendorGroup) checkSubGroupUnique(name, excludeID string) error {
	for i := range g.SubGroups {
		sub := &g.SubGroups[i]
		if sub.IsDeleted || sub.ID == excludeID {
			continue
		}
		if strings.EqualFold(sub.Name, name) {
			return apperrors.AlreadyExists("vendor sub group", name)
		}
	}
	return nil
}

// CustomerGroup mirrors VendorGroup for the customer side
type CustomerGroup struct {
	Base
	Code string `gorm:"column:code;size:32;not null;uniqueIndex"`
	Name string `gorm:"column:name;size:128;not null;index"`

	SubGroups []CustomerSubGroup `gorm:"foreignKey:CustomerGroupID"`
}

func (CustomerGroup) TableName() string { return "customer_groups" }

type CustomerSubGroup struct {
	Base
	CustomerGroupID string `gorm:"column:customer_group_id;size:20;not null;index"`
	Code            string `gorm:"column:code;size:32;not null"`
	Name            string `gorm:"column:name;size:128;not null"`
}

func (CustomerSubGroup) TableName() string { return "customer_sub_groups" }

func (g *CustomerGroup) AddSubGroup(sub CustomerSubGroup) error {
	if err := g.checkSubGroupUnique(sub.Name, ""); err != nil {
		return err
	}
	sub.CustomerGroupID = g.ID
	g.SubGroups = append(g.SubGroups, sub)
	return nil
}

func (g *CustomerGroup) UpdateSubGroup(id string, update CustomerSubGroup, actorID string) error {
	idx := g.subGroupIndex(id)
	if idx < 0 {
		return apperrors.NotFound("customer sub group", id)
	}
	if err := g.checkSubGroupUnique(update.Name, id); err != nil {
		return err
	}
	sub := &g.SubGroups[idx]
	sub.Code = update.Code
	sub.Name = update.Name
	sub.StampUpdated(actorID)
	return nil
}

func (g *CustomerGroup) RemoveSubGroup(id, actorID string) error {
	idx := g.subGroupIndex(id)
	if idx < 0 {
		return apperrors.NotFound("customer sub group", id)
	}
	g.SubGroups[idx].MarkDeleted(actorID)
	return nil
}

// SoftDelete cascades to all active sub groups
func (g *CustomerGroup) SoftDelete(actorID string) {
	g.MarkDeleted(actorID)
	for i := range g.SubGroups {
		if !g.SubGroups[i].IsDeleted {
			g.SubGroups[i].MarkDeleted(actorID)
		}
	}
}

func (g *CustomerGroup) subGroupIndex(id string) int {
	for i := range g.SubGroups {
		if g.SubGroups[i].ID == id && !g.SubGroups[i].IsDeleted {
			return i
		}
	}
	return -1
}

func (g *CustomerGroup) checkSubGroupUnique(name, excludeID string) error {
	for i := range g.SubGroups {
		sub := &g.SubGroups[i]
		if sub.IsDeleted || sub.ID == excludeID {
			continue
		}
		if strings.EqualFold(sub.Name, name) {
			return apperrors.AlreadyExists("customer sub group", name)
		}
	}
	return nil
}
