package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductOptions maps an option category (e.g. "milk") to the ordered list
// of labels a customer may pick from. Categories are vendor-defined, there
// is no fixed schema.
type ProductOptions map[string][]string

func DefaultProductOptions() ProductOptions {
	return ProductOptions{"consume location": {"take away", "in shop"}}
}

type Product struct {
	gorm.Model
	Name  string `json:"name"`
	Price int64  `gorm:"check:price >= 0" json:"price"` // minor currency units

	Options datatypes.JSONType[ProductOptions] `json:"options"`

	OrderDetails []OrderDetail `json:"-"`
}
