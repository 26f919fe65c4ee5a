package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultChosenOption is merged under the caller's selections on every
// reconciliation pass; caller values win key-by-key. Index 0 of
// "consume location" means take away.
func DefaultChosenOption() map[string]any {
	return map[string]any{"consume location": 0}
}

// OrderDetail is one product-plus-chosen-options line within an order.
// Details have no lifecycle of their own: they are destroyed and recreated
// wholesale whenever the order is created or edited, never patched.
type OrderDetail struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	ChosenOption datatypes.JSONMap `json:"chosenOption"`
}
