package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap maps a JSONB column.
type JSONMap map[string]interface{}

// Scan decodes a JSONB value.
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("JSONMap.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(data, m)
}

// Value encodes to JSONB.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Notification maps the notifications table. Rows are the source of
// truth; realtime delivery is a best-effort hint only.
type Notification struct {
	NotificationID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	UserID         string  `gorm:"type:uuid;not null"                             json:"user_id"`
	Type           string  `gorm:"type:varchar(50);not null"                      json:"type"`
	Title          string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Message        string  `gorm:"type:text;not null"                             json:"message"`
	IsRead         bool    `gorm:"not null;default:false"                         json:"is_read"`
	Metadata       JSONMap `gorm:"type:jsonb"                                     json:"metadata,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Notification) TableName() string { return "notifications" }
