package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /order/:id → the owner may see an order in any status.
func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// Mutations may only target the owner's Waiting orders; anything else is
// indistinguishable from an absent order.
func (r *OrderRepository) GetWaitingOrderForUser(tx *gorm.DB, userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("id = ? AND user_id = ? AND status = ?", orderID, userID, entity.StatusWaiting).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /order/ → listing is a Waiting-only view.
func (r *OrderRepository) ListWaitingForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ? AND status = ?", userID, entity.StatusWaiting).
		Order("id").Find(&orders).Error
	return orders, err
}

// DeleteOrder soft-deletes the order row and hard-deletes its details,
// matching ReplaceDetails: detail rows never outlive a wipe.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderDetail{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// ---------------- Order details ----------------

// ReplaceDetails wipes the order's current details and inserts the new set.
// Must run inside the reconciliation transaction: either the whole new set
// lands or the old set survives the rollback.
func (r *OrderRepository) ReplaceDetails(tx *gorm.DB, orderID uint, details []entity.OrderDetail) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderDetail{}).Error; err != nil {
		return err
	}
	for i := range details {
		details[i].OrderID = orderID
		if err := tx.Create(&details[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) GetDetails(orderID uint) ([]entity.OrderDetail, error) {
	var details []entity.OrderDetail
	err := r.DB.Preload("Product").
		Where("order_id = ?", orderID).
		Order("id").Find(&details).Error
	return details, err
}

// TotalPrice sums the live price of every *distinct* product referenced by
// the order: two details for the same product count its price once. That
// mirrors the observed behavior of the system this replaces; see DESIGN.md
// before treating it as a business rule.
func (r *OrderRepository) TotalPrice(orderID uint) (int64, error) {
	sub := r.DB.Model(&entity.OrderDetail{}).
		Distinct("product_id").
		Where("order_id = ?", orderID)

	var total int64
	err := r.DB.Model(&entity.Product{}).
		Where("id IN (?)", sub).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	return total, err
}
