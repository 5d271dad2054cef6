package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PatentStatus is the closed set of patent lifecycle states
type PatentStatus string

const (
	StatusFiled     PatentStatus = "FILED"
	StatusGranted   PatentStatus = "GRANTED"
	StatusExpired   PatentStatus = "EXPIRED"
	StatusAbandoned PatentStatus = "ABANDONED"
	StatusAnnulled  PatentStatus = "ANNULLED"
	StatusRevoked   PatentStatus = "REVOKED"
)

// TerminalStatuses lists the states after which expiry tracking is
// meaningless. Expiry queries exclude these rather than listing the
// non-terminal states, so new non-terminal statuses are picked up
// without a code change.
var TerminalStatuses = []PatentStatus{
	StatusExpired,
	StatusAbandoned,
	StatusAnnulled,
	StatusRevoked,
}

// IsValid reports whether the status belongs to the closed enumeration
func (s PatentStatus) IsValid() bool {
	switch s {
	case StatusFiled, StatusGranted, StatusExpired, StatusAbandoned, StatusAnnulled, StatusRevoked:
		return true
	}
	return false
}

// IsTerminal reports whether the status is in the terminal set
func (s PatentStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// TimelineEntry is one append-only event in a patent's history
type TimelineEntry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// Note is one append-only annotation on a patent
type Note struct {
	Text   string    `json:"text"`
	Author string    `json:"author"`
	Date   time.Time `json:"date"`
}

type Patent struct {
	gorm.Model
	Number          string                                  `gorm:"column:number;unique;not null"`
	Title           string                                  `gorm:"column:title;not null"`
	Description     string                                  `gorm:"column:description;type:text"`
	Status          PatentStatus                            `gorm:"column:status;type:varchar(32);default:'FILED';not null;index"`
	FilingDate      time.Time                               `gorm:"column:filing_date;not null;index"`
	GrantDate       *time.Time                              `gorm:"column:grant_date"`
	ExpiryDate      time.Time                               `gorm:"column:expiry_date;not null;index"`
	Inventors       datatypes.JSONSlice[string]             `gorm:"column:inventors"`
	Classifications datatypes.JSONSlice[string]             `gorm:"column:classifications"`
	Metadata        datatypes.JSONMap                       `gorm:"column:metadata"`
	Timeline        datatypes.JSONSlice[TimelineEntry]      `gorm:"column:timeline"`
	Notes           datatypes.JSONSlice[Note]               `gorm:"column:notes"`
	Holders         []Holder                                `gorm:"many2many:patent_holders;"`
}
