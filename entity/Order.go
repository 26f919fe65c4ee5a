package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when the owner's contact info is needed

	Status OrderStatus `gorm:"type:varchar(1);default:'W'" json:"status"`

	// Owned exclusively: details live and die with the order.
	OrderDetails []OrderDetail `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
