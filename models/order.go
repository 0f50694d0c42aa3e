package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
)

// ServiceOrder is one checkout entry. Ownership is by the email field;
// there is no foreign key back to a user table.
type ServiceOrder struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"index;not null" json:"email"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Date         string    `json:"date"`
	ServiceID    string    `json:"service_id"`
	ServiceTitle string    `json:"service"`
	Price        float64   `gorm:"type:decimal(10,2)" json:"price"`
	Img          string    `json:"img"`
	Status       string    `gorm:"default:'pending'" json:"status"`
}

func (o *ServiceOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return
}
