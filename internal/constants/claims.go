package constants

import "fmt"

// Permission claim actions. Claims are stored as "<Entity>:<Action>"
// strings on roles and embedded into access tokens.
const (
	ActionCreate = "Create"
	ActionRead   = "Read"
	ActionUpdate = "Update"
	ActionDelete = "Delete"
)

// Entities guarded by permission claims
const (
	EntityVendor        = "Vendor"
	EntityCustomer      = "Customer"
	EntityVendorGroup   = "VendorGroup"
	EntityCustomerGroup = "CustomerGroup"
	EntityCurrency      = "Currency"
	EntityGender        = "Gender"
	EntityConfig        = "Config"
	EntityUser          = "User"
	EntityRole          = "Role"
)

// Permission builds a claim value for an entity and action
func Permission(entity, action string) string {
	return fmt.Sprintf("%s:%s", entity, action)
}

// AllEntities lists every guarded entity, used when seeding the
// administrator role with the full claim set.
func AllEntities() []string {
	return []string{
		EntityVendor,
		EntityCustomer,
		EntityVendorGroup,
		EntityCustomerGroup,
		EntityCurrency,
		EntityGender,
		EntityConfig,
		EntityUser,
		EntityRole,
	}
}

// AllActions lists every claim action
func AllActions() []string {
	return []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
}
