package dto

import (
	"time"

	"github.com/brevetti-digital/backend/internal/model"
)

type CreatePatentRequest struct {
	Number          string                 `json:"number" binding:"required,min=2,max=64"`
	Title           string                 `json:"title" binding:"required,min=2,max=255"`
	Description     string                 `json:"description" binding:"omitempty,max=10000"`
	Status          string                 `json:"status" binding:"required,oneof=FILED GRANTED EXPIRED ABANDONED ANNULLED REVOKED"`
	FilingDate      time.Time              `json:"filing_date" binding:"required"`
	GrantDate       *time.Time             `json:"grant_date" binding:"omitempty"`
	ExpiryDate      time.Time              `json:"expiry_date" binding:"required"`
	HolderIDs       []uint                 `json:"holder_ids" binding:"omitempty,dive,gt=0"`
	Inventors       []string               `json:"inventors" binding:"omitempty,dive,min=1"`
	Classifications []string               `json:"classifications" binding:"omitempty,dive,min=1"`
	Metadata        map[string]interface{} `json:"metadata" binding:"omitempty"`
}

type UpdatePatentRequest struct {
	Title           string                 `json:"title" binding:"omitempty,min=2,max=255"`
	Description     *string                `json:"description" binding:"omitempty"`
	Status          string                 `json:"status" binding:"omitempty,oneof=FILED GRANTED EXPIRED ABANDONED ANNULLED REVOKED"`
	FilingDate      *time.Time             `json:"filing_date" binding:"omitempty"`
	GrantDate       *time.Time             `json:"grant_date" binding:"omitempty"`
	ExpiryDate      *time.Time             `json:"expiry_date" binding:"omitempty"`
	HolderIDs       []uint                 `json:"holder_ids" binding:"omitempty,dive,gt=0"`
	Inventors       []string               `json:"inventors" binding:"omitempty,dive,min=1"`
	Classifications []string               `json:"classifications" binding:"omitempty,dive,min=1"`
	Metadata        map[string]interface{} `json:"metadata" binding:"omitempty"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required,min=1,max=5000"`
}

type AddTimelineEntryRequest struct {
	Description string     `json:"description" binding:"required,min=1,max=1000"`
	Date        *time.Time `json:"date" binding:"omitempty"`
}

// PatentFilter holds the optional list filters for GET /patents
type PatentFilter struct {
	Status     string     `form:"status" binding:"omitempty,oneof=FILED GRANTED EXPIRED ABANDONED ANNULLED REVOKED"`
	HolderID   uint       `form:"holder_id" binding:"omitempty,gt=0"`
	FiledAfter *time.Time `form:"filed_after" time_format:"2006-01-02"`
	FiledUntil *time.Time `form:"filed_until" time_format:"2006-01-02"`
	Search     string     `form:"search"`
}

type PatentResponse struct {
	ID              uint                  `json:"id"`
	Number          string                `json:"number"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	Status          string                `json:"status"`
	FilingDate      time.Time             `json:"filing_date"`
	GrantDate       *time.Time            `json:"grant_date,omitempty"`
	ExpiryDate      time.Time             `json:"expiry_date"`
	Inventors       []string              `json:"inventors,omitempty"`
	Classifications []string              `json:"classifications,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	Timeline        []model.TimelineEntry `json:"timeline,omitempty"`
	Notes           []model.Note          `json:"notes,omitempty"`
	Holders         []HolderResponse      `json:"holders,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func NewPatentResponse(p *model.Patent) PatentResponse {
	return PatentResponse{
		ID:              p.ID,
		Number:          p.Number,
		Title:           p.Title,
		Description:     p.Description,
		Status:          string(p.Status),
		FilingDate:      p.FilingDate,
		GrantDate:       p.GrantDate,
		ExpiryDate:      p.ExpiryDate,
		Inventors:       p.Inventors,
		Classifications: p.Classifications,
		Metadata:        p.Metadata,
		Timeline:        p.Timeline,
		Notes:           p.Notes,
		Holders:         NewHolderResponses(p.Holders),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func NewPatentResponses(patents []model.Patent) []PatentResponse {
	out := make([]PatentResponse, 0, len(patents))
	for i := range patents {
		out = append(out, NewPatentResponse(&patents[i]))
	}
	return out
}

// PatentStatsResponse is the aggregate view over the patent collection
type PatentStatsResponse struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByFilingYear   map[int]int64    `json:"by_filing_year"`
	TopHolders     []HolderCount    `json:"top_holders"`
	ExpiringSoon   int64            `json:"expiring_soon"` // within 90 days, non-terminal only
}

type HolderCount struct {
	HolderID uint   `json:"holder_id"`
	Name     string `json:"name"`
	Count    int64  `json:"count"`
}
