package dto

import (
	"encoding/json"
	"time"
)

type ConfigRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=64"`
	Value       json.RawMessage `json:"value" binding:"required"`
	Description string          `json:"description" binding:"omitempty,max=256"`
}

type ConfigResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Value       json.RawMessage `json:"value"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
