package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   string    `gorm:"index" json:"service_id"`
	Title       string    `gorm:"not null" json:"title"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Img         string    `json:"img"`
	Description string    `json:"description,omitempty"`
	Facility    JSONB     `gorm:"type:jsonb" json:"facility,omitempty"`
}

// Initialize UUID before creating
func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// ServiceSummary is the projected shape returned by the list endpoint:
// everything except description and facility.
type ServiceSummary struct {
	ID        uuid.UUID `json:"id"`
	ServiceID string    `json:"service_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Img       string    `json:"img"`
}

// ServiceDetail is the projection used on the checkout page: title, price
// and image only.
type ServiceDetail struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
}

// JSONB stores schemaless document fields (the facility list) in a
// postgres jsonb column.
type JSONB []map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, j)
}
