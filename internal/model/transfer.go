package model

import "time"

// Transfer request statuses.
const (
	StatusPending   = "PENDING"
	StatusVerified  = "VERIFIED"
	StatusPaused    = "PAUSED"
	StatusMatched   = "MATCHED"
	StatusAccepted  = "ACCEPTED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusRejected  = "REJECTED"
)

// Acceptance statuses.
const (
	AcceptancePending  = "PENDING"
	AcceptanceApproved = "APPROVED"
	AcceptanceRejected = "REJECTED"
)

// UniqueIDPrefix starts every public transfer reference
// (TR-<year>-<seq>).
const UniqueIDPrefix = "TR-"

// IsTerminalStatus reports whether a request status permits no further
// mutation.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled || status == StatusRejected
}

// IsActiveStatus reports whether a status counts against the
// one-active-request-per-owner rule.
func IsActiveStatus(status string) bool {
	return status == StatusPending || status == StatusVerified || status == StatusMatched
}

// TransferRequest maps the transfer_requests table: one party's offer
// to mutually swap their current position.
type TransferRequest struct {
	TransferRequestID      string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"transfer_request_id"`
	UniqueID               string      `gorm:"type:varchar(20);not null;uniqueIndex"          json:"unique_id"`
	RequesterID            string      `gorm:"type:uuid;not null"                             json:"requester_id"`
	FromZoneID             string      `gorm:"type:uuid;not null"                             json:"from_zone_id"`
	CurrentDistrictID      *string     `gorm:"type:uuid"                                      json:"current_district_id,omitempty"`
	SubjectID              string      `gorm:"type:uuid;not null"                             json:"subject_id"`
	MediumID               string      `gorm:"type:uuid;not null"                             json:"medium_id"`
	Level                  string      `gorm:"type:varchar(20);not null"                      json:"level"`
	CurrentSchool          string      `gorm:"type:varchar(255)"                              json:"current_school,omitempty"`
	CurrentSchoolType      string      `gorm:"type:varchar(50)"                               json:"current_school_type,omitempty"`
	YearsOfService         int         `gorm:"not null;default:0"                             json:"years_of_service"`
	Qualifications         StringArray `gorm:"type:text[]"                                    json:"qualifications"`
	IsInternalTeacher      bool        `gorm:"not null;default:true"                          json:"is_internal_teacher"`
	PreferredSchoolTypes   StringArray `gorm:"type:text[]"                                    json:"preferred_school_types"`
	AdditionalRequirements string      `gorm:"type:text"                                      json:"additional_requirements,omitempty"`
	Notes                  string      `gorm:"type:text"                                      json:"notes,omitempty"`
	Attachments            StringArray `gorm:"type:text[]"                                    json:"attachments"`
	Status                 string      `gorm:"type:varchar(20);not null;default:'PENDING'"    json:"status"`
	PausedFromStatus       *string     `gorm:"type:varchar(20)"                               json:"paused_from_status,omitempty"`
	Verified               bool        `gorm:"not null;default:false"                         json:"verified"`
	VerifiedBy             *string     `gorm:"type:uuid"                                      json:"verified_by,omitempty"`
	VerifiedAt             *time.Time  `json:"verified_at,omitempty"`
	VerificationNotes      string      `gorm:"type:text"                                      json:"verification_notes,omitempty"`
	AcceptanceNotes        string      `gorm:"type:text"                                      json:"acceptance_notes,omitempty"`
	CompletedAt            *time.Time  `json:"completed_at,omitempty"`
	VersionedModel

	Requester       *User                        `gorm:"foreignKey:RequesterID;references:UserID"            json:"requester,omitempty"`
	FromZone        *Zone                        `gorm:"foreignKey:FromZoneID;references:ZoneID"             json:"from_zone,omitempty"`
	CurrentDistrict *District                    `gorm:"foreignKey:CurrentDistrictID;references:DistrictID"  json:"current_district,omitempty"`
	Subject         *Subject                     `gorm:"foreignKey:SubjectID;references:SubjectID"           json:"subject,omitempty"`
	Medium          *Medium                      `gorm:"foreignKey:MediumID;references:MediumID"             json:"medium,omitempty"`
	DesiredZones    []TransferRequestDesiredZone `gorm:"foreignKey:TransferRequestID"                        json:"desired_zones,omitempty"`
	Acceptances     []TransferAcceptance         `gorm:"foreignKey:TransferRequestID"                        json:"acceptances,omitempty"`
	Messages        []TransferMessage            `gorm:"foreignKey:TransferRequestID"                        json:"messages,omitempty"`
}

// TableName sets the table name.
func (TransferRequest) TableName() string { return "transfer_requests" }

// DesiredZoneIDs returns the zone ids in priority order. DesiredZones
// must have been preloaded ordered by priority.
func (r *TransferRequest) DesiredZoneIDs() []string {
	ids := make([]string, len(r.DesiredZones))
	for i, dz := range r.DesiredZones {
		ids[i] = dz.ZoneID
	}
	return ids
}

// WantsZone reports whether zoneID appears in the desired zone list.
func (r *TransferRequest) WantsZone(zoneID string) bool {
	for _, dz := range r.DesiredZones {
		if dz.ZoneID == zoneID {
			return true
		}
	}
	return false
}

// TopDesiredZoneID returns the priority-1 zone id, or "" when the
// desired list was not loaded.
func (r *TransferRequest) TopDesiredZoneID() string {
	top := ""
	best := 0
	for _, dz := range r.DesiredZones {
		if top == "" || dz.Priority < best {
			top = dz.ZoneID
			best = dz.Priority
		}
	}
	return top
}

// TransferRequestDesiredZone is one entry of a request's ordered
// desired-zone list. Priority 1 is the most preferred.
type TransferRequestDesiredZone struct {
	DesiredZoneID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"desired_zone_id"`
	TransferRequestID string `gorm:"type:uuid;not null"                             json:"transfer_request_id"`
	ZoneID            string `gorm:"type:uuid;not null"                             json:"zone_id"`
	Priority          int    `gorm:"not null"                                       json:"priority"`
	BaseModel

	Zone *Zone `gorm:"foreignKey:ZoneID;references:ZoneID" json:"zone,omitempty"`
}

// TableName sets the table name.
func (TransferRequestDesiredZone) TableName() string { return "transfer_request_desired_zones" }

// TransferAcceptance maps the transfer_acceptances table: a one-sided
// expression of interest by a third party in someone else's request.
type TransferAcceptance struct {
	AcceptanceID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"acceptance_id"`
	TransferRequestID string     `gorm:"type:uuid;not null"                             json:"transfer_request_id"`
	AcceptorID        string     `gorm:"type:uuid;not null"                             json:"acceptor_id"`
	Status            string     `gorm:"type:varchar(20);not null;default:'PENDING'"    json:"status"`
	Notes             string     `gorm:"type:text"                                      json:"notes,omitempty"`
	AcceptedAt        *time.Time `json:"accepted_at,omitempty"`
	BaseModel

	Request  *TransferRequest `gorm:"foreignKey:TransferRequestID;references:TransferRequestID" json:"request,omitempty"`
	Acceptor *User            `gorm:"foreignKey:AcceptorID;references:UserID"                   json:"acceptor,omitempty"`
}

// TableName sets the table name.
func (TransferAcceptance) TableName() string { return "transfer_acceptances" }

// TransferMessage maps the transfer_messages table. Messages are
// immutable once created except for the read flag.
type TransferMessage struct {
	MessageID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	TransferRequestID string    `gorm:"type:uuid;not null"                             json:"transfer_request_id"`
	SenderID          string    `gorm:"type:uuid;not null"                             json:"sender_id"`
	Content           string    `gorm:"type:text;not null"                             json:"content"`
	Read              bool      `gorm:"not null;default:false"                         json:"read"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	Request *TransferRequest `gorm:"foreignKey:TransferRequestID;references:TransferRequestID" json:"request,omitempty"`
	Sender  *User            `gorm:"foreignKey:SenderID;references:UserID"                     json:"sender,omitempty"`
}

// TableName sets the table name.
func (TransferMessage) TableName() string { return "transfer_messages" }

// TransferSequence maps the transfer_sequences table: the per-year
// atomic counter backing unique_id generation.
type TransferSequence struct {
	Year  int `gorm:"primaryKey" json:"year"`
	Value int `gorm:"not null"   json:"value"`
}

// TableName sets the table name.
func (TransferSequence) TableName() string { return "transfer_sequences" }
