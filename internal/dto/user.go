package dto

import "time"

type CreateUserRequest struct {
	FirstName string   `json:"firstName" binding:"required,min=2,max=64"`
	LastName  string   `json:"lastName" binding:"required,min=2,max=64"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8,max=100"`
	RoleIDs   []string `json:"roleIds"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"omitempty,min=2,max=64"`
	LastName  string `json:"lastName" binding:"omitempty,min=2,max=64"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UserResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	IsBlocked      bool       `json:"isBlocked"`
	EmailConfirmed bool       `json:"emailConfirmed"`
	LastLogin      *time.Time `json:"lastLogin,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`

	Roles []RoleResponse `json:"roles,omitempty"`
}

type AssignRolesRequest struct {
	RoleIDs []string `json:"roleIds" binding:"required"`
}

type RoleRequest struct {
	Name   string   `json:"name" binding:"required,min=2,max=64"`
	Claims []string `json:"claims"`
}

type RoleResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Claims []string `json:"claims,omitempty"`
}
