package model

// User roles.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// User maps the users table.
type User struct {
	UserID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FirstName      string  `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName       string  `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Phone          string  `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role           string  `gorm:"type:varchar(20);not null;default:'teacher'"    json:"role"`
	RegistrationID string  `gorm:"type:varchar(50)"                               json:"registration_id,omitempty"`
	City           string  `gorm:"type:varchar(100)"                              json:"city,omitempty"`
	DistrictID     *string `gorm:"type:uuid"                                      json:"district_id,omitempty"`
	VersionedModel

	District *District `gorm:"foreignKey:DistrictID;references:DistrictID" json:"district,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
