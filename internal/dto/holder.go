package dto

import (
	"time"

	"github.com/brevetti-digital/backend/internal/model"
)

type CreateHolderRequest struct {
	Name      string                 `json:"name" binding:"required,min=2,max=255"`
	Kind      string                 `json:"kind" binding:"required,oneof=INDIVIDUAL COMPANY PUBLIC_BODY"`
	TaxCode   string                 `json:"tax_code" binding:"omitempty,max=32"`
	VATNumber string                 `json:"vat_number" binding:"omitempty,max=32"`
	Address   string                 `json:"address" binding:"omitempty,max=255"`
	City      string                 `json:"city" binding:"omitempty,max=128"`
	Country   string                 `json:"country" binding:"omitempty,max=64"`
	Email     string                 `json:"email" binding:"omitempty,email"`
	Phone     string                 `json:"phone" binding:"omitempty,max=32"`
	Metadata  map[string]interface{} `json:"metadata" binding:"omitempty"`
}

type UpdateHolderRequest struct {
	Name      string                 `json:"name" binding:"omitempty,min=2,max=255"`
	Kind      string                 `json:"kind" binding:"omitempty,oneof=INDIVIDUAL COMPANY PUBLIC_BODY"`
	TaxCode   *string                `json:"tax_code" binding:"omitempty"`
	VATNumber *string                `json:"vat_number" binding:"omitempty"`
	Address   *string                `json:"address" binding:"omitempty"`
	City      *string                `json:"city" binding:"omitempty"`
	Country   *string                `json:"country" binding:"omitempty"`
	Email     *string                `json:"email" binding:"omitempty"`
	Phone     *string                `json:"phone" binding:"omitempty"`
	Active    *bool                  `json:"active" binding:"omitempty"`
	Metadata  map[string]interface{} `json:"metadata" binding:"omitempty"`
}

// HolderFilter holds the optional list filters for GET /holders
type HolderFilter struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=INDIVIDUAL COMPANY PUBLIC_BODY"`
	Active *bool  `form:"active"`
	Search string `form:"search"`
}

type HolderResponse struct {
	ID        uint                   `json:"id"`
	Name      string                 `json:"name"`
	Kind      string                 `json:"kind"`
	TaxCode   string                 `json:"tax_code,omitempty"`
	VATNumber string                 `json:"vat_number,omitempty"`
	Address   string                 `json:"address,omitempty"`
	City      string                 `json:"city,omitempty"`
	Country   string                 `json:"country,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Phone     string                 `json:"phone,omitempty"`
	Active    bool                   `json:"active"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func NewHolderResponse(h *model.Holder) HolderResponse {
	return HolderResponse{
		ID:        h.ID,
		Name:      h.Name,
		Kind:      string(h.Kind),
		TaxCode:   h.TaxCode,
		VATNumber: h.VATNumber,
		Address:   h.Address,
		City:      h.City,
		Country:   h.Country,
		Email:     h.Email,
		Phone:     h.Phone,
		Active:    h.Active,
		Metadata:  h.Metadata,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func NewHolderResponses(holders []model.Holder) []HolderResponse {
	out := make([]HolderResponse, 0, len(holders))
	for i := range holders {
		out = append(out, NewHolderResponse(&holders[i]))
	}
	return out
}

// HolderStatsResponse is the aggregate view over the holder collection
type HolderStatsResponse struct {
	Total    int64            `json:"total"`
	ByKind   map[string]int64 `json:"by_kind"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
}
