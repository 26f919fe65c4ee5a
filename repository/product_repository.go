package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Order("id").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// AllExist reports whether every id resolves to a product. ids must be
// deduplicated by the caller.
func (r *ProductRepository) AllExist(tx *gorm.DB, ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var cnt int64
	if err := tx.Model(&entity.Product{}).Where("id IN ?", ids).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt == int64(len(ids)), nil
}
