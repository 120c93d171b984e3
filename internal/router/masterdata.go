package router

import (
	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
)

// masterDataRoutes defines the vendor, customer, group and lookup
// endpoints. Every route is claim-gated per entity and action.
func (r *Router) masterDataRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	vendors.Use(r.jwtMw.RequireAuth())
	{
		vendors.GET("", r.requireRead(constants.EntityVendor), r.vendorHandler.List)
		vendors.GET("/:id", r.requireRead(constants.EntityVendor), r.vendorHandler.Get)
		vendors.POST("", r.requireCreate(constants.EntityVendor), r.vendorHandler.Create)
		vendors.PUT("/:id", r.requireUpdate(constants.EntityVendor), r.vendorHandler.Update)
		vendors.DELETE("/:id", r.requireDelete(constants.EntityVendor), r.vendorHandler.Delete)

		vendors.POST("/:id/contacts", r.requireUpdate(constants.EntityVendor), r.vendorHandler.AddContact)
		vendors.PUT("/:id/contacts/:contactId", r.requireUpdate(constants.EntityVendor), r.vendorHandler.UpdateContact)
		vendors.DELETE("/:id/contacts/:contactId", r.requireUpdate(constants.EntityVendor), r.vendorHandler.RemoveContact)
	}

	vendorGroups := rg.Group("/vendor-groups")
	vendorGroups.Use(r.jwtMw.RequireAuth())
	{
		vendorGroups.GET("", r.requireRead(constants.EntityVendorGroup), r.vendorGroupHandler.List)
		vendorGroups.GET("/:id", r.requireRead(constants.EntityVendorGroup), r.vendorGroupHandler.Get)
		vendorGroups.POST("", r.requireCreate(constants.EntityVendorGroup), r.vendorGroupHandler.Create)
		vendorGroups.PUT("/:id", r.requireUpdate(constants.EntityVendorGroup), r.vendorGroupHandler.Update)
		vendorGroups.DELETE("/:id", r.requireDelete(constants.EntityVendorGroup), r.vendorGroupHandler.Delete)

		vendorGroups.POST("/:id/sub-groups", r.requireUpdate(constants.EntityVendorGroup), r.vendorGroupHandler.AddSubGroup)
		vendorGroups.PUT("/:id/sub-groups/:subId", r.requireUpdate(constants.EntityVendorGroup), r.vendorGroupHandler.UpdateSubGroup)
		vendorGroups.DELETE("/:id/sub-groups/:subId", r.requireUpdate(constants.EntityVendorGroup), r.vendorGroupHandler.RemoveSubGroup)
	}

	customers := rg.Group("/customers")
	customers.Use(r.jwtMw.RequireAuth())
	{
		customers.GET("", r.requireRead(constants.EntityCustomer), r.customerHandler.List)
		customers.GET("/:id", r.requireRead(constants.EntityCustomer), r.customerHandler.Get)
		customers.POST("", r.requireCreate(constants.EntityCustomer), r.customerHandler.Create)
		customers.PUT("/:id", r.requireUpdate(constants.EntityCustomer), r.customerHandler.Update)
		customers.DELETE("/:id", r.requireDelete(constants.EntityCustomer), r.customerHandler.Delete)

		customers.POST("/:id/contacts", r.requireUpdate(constants.EntityCustomer), r.customerHandler.AddContact)
		customers.PUT("/:id/contacts/:contactId", r.requireUpdate(constants.EntityCustomer), r.customerHandler.UpdateContact)
		customers.DELETE("/:id/contacts/:contactId", r.requireUpdate(constants.EntityCustomer), r.customerHandler.RemoveContact)
	}

	customerGroups := rg.Group("/customer-groups")
	customerGroups.Use(r.jwtMw.RequireAuth())
	{
		customerGroups.GET("", r.requireRead(constants.EntityCustomerGroup), r.customerGroupHandler.List)
		customerGroups.GET("/:id", r.requireRead(constants.EntityCustomerGroup), r.customerGroupHandler.Get)
		customerGroups.POST("", r.requireCreate(constants.EntityCustomerGroup), r.customerGroupHandler.Create)
		customerGroups.PUT("/:id", r.requireUpdate(constants.EntityCustomerGroup), r.customerGroupHandler.Update)
		customerGroups.DELETE("/:id", r.requireDelete(constants.EntityCustomerGroup), r.customerGroupHandler.Delete)

		customerGroups.POST("/:id/sub-groups", r.requireUpdate(constants.EntityCustomerGroup), r.customerGroupHandler.AddSubGroup)
		customerGroups.PUT("/:id/sub-groups/:subId", r.requireUpdate(constants.EntityCustomerGroup), r.customerGroupHandler.UpdateSubGroup)
		customerGroups.DELETE("/:id/sub-groups/:subId", r.requireUpdate(constants.EntityCustomerGroup), r.customerGroupHandler.RemoveSubGroup)
	}

	currencies := rg.Group("/currencies")
	currencies.Use(r.jwtMw.RequireAuth())
	{
		currencies.GET("", r.requireRead(constants.EntityCurrency), r.currencyHandler.List)
		currencies.GET("/:id", r.requireRead(constants.EntityCurrency), r.currencyHandler.Get)
		currencies.POST("", r.requireCreate(constants.EntityCurrency), r.currencyHandler.Create)
		currencies.PUT("/:id", r.requireUpdate(constants.EntityCurrency), r.currencyHandler.Update)
		currencies.DELETE("/:id", r.requireDelete(constants.EntityCurrency), r.currencyHandler.Delete)
	}

	genders := rg.Group("/genders")
	genders.Use(r.jwtMw.RequireAuth())
	{
		genders.GET("", r.requireRead(constants.EntityGender), r.genderHandler.List)
		genders.GET("/:id", r.requireRead(constants.EntityGender), r.genderHandler.Get)
		genders.POST("", r.requireCreate(constants.EntityGender), r.genderHandler.Create)
		genders.PUT("/:id", r.requireUpdate(constants.EntityGender), r.genderHandler.Update)
		genders.DELETE("/:id", r.requireDelete(constants.EntityGender), r.genderHandler.Delete)
	}
}

// configRoutes defines the configuration endpoints
func (r *Router) configRoutes(rg *gin.RouterGroup) {
	configs := rg.Group("/configs")
	configs.Use(r.jwtMw.RequireAuth())
	{
		configs.GET("", r.requireRead(constants.EntityConfig), r.configHandler.List)
		configs.GET("/:name", r.requireRead(constants.EntityConfig), r.configHandler.GetByName)
		configs.PUT("", r.requireUpdate(constants.EntityConfig), r.configHandler.Upsert)
		configs.DELETE("/:id", r.requireDelete(constants.EntityConfig), r.configHandler.Delete)
	}
}
