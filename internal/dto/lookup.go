package dto

import "time"

type CurrencyRequest struct {
	Code   string `json:"code" binding:"required,min=2,max=8"`
	Name   string `json:"name" binding:"required,min=2,max=64"`
	Symbol string `json:"symbol" binding:"omitempty,max=8"`
}

type CurrencyResponse struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Symbol    string     `json:"symbol,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type GenderRequest struct {
	Code string `json:"code" binding:"required,min=1,max=8"`
	Name string `json:"name" binding:"required,min=2,max=32"`
}

type GenderResponse struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
