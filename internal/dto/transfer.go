package dto

import "time"

// ── requests ──

// CreateTransferRequest is the mutual-transfer creation payload.
// Location/subject/medium terms are human-readable names (or codes)
// resolved to stable references at creation time.
type CreateTransferRequest struct {
	FromZone               string   `json:"from_zone"               binding:"required"`
	ToZones                []string `json:"to_zones"                binding:"required,min=1,dive,required"`
	Subject                string   `json:"subject"                 binding:"required"`
	Medium                 string   `json:"medium"                  binding:"required"`
	Level                  string   `json:"level"                   binding:"required,max=20"`
	CurrentSchool          string   `json:"current_school"          binding:"omitempty,max=255"`
	CurrentSchoolType      string   `json:"current_school_type"     binding:"omitempty,max=50"`
	CurrentDistrict        string   `json:"current_district"        binding:"omitempty,max=100"`
	YearsOfService         int      `json:"years_of_service"        binding:"omitempty,min=0,max=50"`
	Qualifications         []string `json:"qualifications"          binding:"omitempty,dive,max=200"`
	IsInternalTeacher      *bool    `json:"is_internal_teacher"`
	PreferredSchoolTypes   []string `json:"preferred_school_types"  binding:"omitempty,dive,max=50"`
	AdditionalRequirements string   `json:"additional_requirements" binding:"omitempty,max=2000"`
	Notes                  string   `json:"notes"                   binding:"omitempty,max=2000"`
	Attachments            []string `json:"attachments"             binding:"omitempty,dive,max=500"`
}

// UpdateTransferRequest is the owner edit payload. Only fields present
// are touched; desired zones are replaced as a whole.
type UpdateTransferRequest struct {
	ToZones                []string `json:"to_zones"                binding:"omitempty,min=1,dive,required"`
	Notes                  *string  `json:"notes"                   binding:"omitempty,max=2000"`
	AdditionalRequirements *string  `json:"additional_requirements" binding:"omitempty,max=2000"`
	PreferredSchoolTypes   []string `json:"preferred_school_types"  binding:"omitempty,dive,max=50"`
}

// VerifyTransferRequest is the admin verification decision.
type VerifyTransferRequest struct {
	Verified          *bool  `json:"verified"           binding:"required"`
	VerificationNotes string `json:"verification_notes" binding:"omitempty,max=2000"`
}

// AcceptTransferRequest carries optional notes on a direct accept.
type AcceptTransferRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=2000"`
}

// PauseTransferRequest carries the pause reason.
type PauseTransferRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// AdminStatusUpdateRequest is the admin force status override.
type AdminStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING VERIFIED PAUSED MATCHED ACCEPTED COMPLETED CANCELLED REJECTED"`
	Notes  string `json:"notes"  binding:"omitempty,max=2000"`
}

// BrowseTransferFilters are the public listing filters.
type BrowseTransferFilters struct {
	FromZone          string `form:"from_zone"`
	ToZone            string `form:"to_zone"`
	Subject           string `form:"subject"`
	Medium            string `form:"medium"`
	Level             string `form:"level"`
	CurrentDistrict   string `form:"current_district"`
	CurrentSchoolType string `form:"current_school_type"`
	IsInternalTeacher *bool  `form:"is_internal_teacher"`
	MinYearsOfService *int   `form:"min_years_of_service" binding:"omitempty,min=0"`
	PaginationRequest
}

// AdminTransferFilters are the admin listing filters.
type AdminTransferFilters struct {
	Status   string `form:"status"   binding:"omitempty,oneof=PENDING VERIFIED PAUSED MATCHED ACCEPTED COMPLETED CANCELLED REJECTED"`
	Verified *bool  `form:"verified"`
	Search   string `form:"search"   binding:"omitempty,max=100"`
	PaginationRequest
}

// ── responses ──

// TransferRequestResponse is the owner/admin-facing full projection.
type TransferRequestResponse struct {
	ID                     string           `json:"id"`
	UniqueID               string           `json:"unique_id"`
	RequesterID            string           `json:"requester_id"`
	Requester              *PartyBrief      `json:"requester,omitempty"`
	FromZone               string           `json:"from_zone"`
	ToZones                []ZonePreference `json:"to_zones"`
	Subject                string           `json:"subject"`
	Medium                 string           `json:"medium"`
	Level                  string           `json:"level"`
	CurrentSchool          string           `json:"current_school,omitempty"`
	CurrentSchoolType      string           `json:"current_school_type,omitempty"`
	CurrentDistrict        string           `json:"current_district,omitempty"`
	YearsOfService         int              `json:"years_of_service"`
	Qualifications         []string         `json:"qualifications"`
	IsInternalTeacher      bool             `json:"is_internal_teacher"`
	PreferredSchoolTypes   []string         `json:"preferred_school_types"`
	AdditionalRequirements string           `json:"additional_requirements,omitempty"`
	Notes                  string           `json:"notes,omitempty"`
	Attachments            []string         `json:"attachments"`
	Status                 string           `json:"status"`
	PausedFromStatus       string           `json:"paused_from_status,omitempty"`
	Verified               bool             `json:"verified"`
	VerifiedAt             *time.Time       `json:"verified_at,omitempty"`
	VerificationNotes      string           `json:"verification_notes,omitempty"`
	CompletedAt            *time.Time       `json:"completed_at,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// PartyBrief is a compact user identification.
type PartyBrief struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ZonePreference is one desired zone with its priority.
type ZonePreference struct {
	Zone     string `json:"zone"`
	Priority int    `json:"priority"`
}

// TransferMatchResponse is one ranked candidate swap.
type TransferMatchResponse struct {
	ID                string    `json:"id"`
	UniqueID          string    `json:"unique_id"`
	Requester         *PartyBrief `json:"requester,omitempty"`
	FromZone          string    `json:"from_zone"`
	ToZones           []string  `json:"to_zones"`
	Subject           string    `json:"subject"`
	Medium            string    `json:"medium"`
	Level             string    `json:"level"`
	CurrentSchoolType string    `json:"current_school_type,omitempty"`
	YearsOfService    int       `json:"years_of_service"`
	Qualifications    []string  `json:"qualifications"`
	IsInternalTeacher bool      `json:"is_internal_teacher"`
	MatchScore        int       `json:"match_score"`
	Verified          bool      `json:"verified"`
	CreatedAt         time.Time `json:"created_at"`
}

// TransferStatsResponse is the admin statistics projection.
type TransferStatsResponse struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	Verified   int64            `json:"verified"`
	Matched    int64            `json:"matched"`
	Completed  int64            `json:"completed"`
	ThisYear   int64            `json:"this_year"`
}
