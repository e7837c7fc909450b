package model

// Reference data: administrative taxonomies resolved at request
// creation time. Managed outside this service; read-only here.

// District maps the districts table.
type District struct {
	DistrictID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"district_id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Code       string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	BaseModel
}

// TableName sets the table name.
func (District) TableName() string { return "districts" }

// Zone maps the zones table.
type Zone struct {
	ZoneID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"zone_id"`
	DistrictID *string `gorm:"type:uuid"                                      json:"district_id,omitempty"`
	Name       string  `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Code       string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	BaseModel

	District *District `gorm:"foreignKey:DistrictID;references:DistrictID" json:"district,omitempty"`
}

// TableName sets the table name.
func (Zone) TableName() string { return "zones" }

// Subject maps the subjects table.
type Subject struct {
	SubjectID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Code      string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	BaseModel
}

// TableName sets the table name.
func (Subject) TableName() string { return "subjects" }

// Medium maps the mediums table (language of instruction).
type Medium struct {
	MediumID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"medium_id"`
	Name     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"name"`
	BaseModel
}

// TableName sets the table name.
func (Medium) TableName() string { return "mediums" }
