package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Products *repository.ProductRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, products *repository.ProductRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, Products: products}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID    uint
	ChosenOption map[string]any
}

// ----- Response views (wire shapes) -----

type ProductBrief struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type OrderDetailView struct {
	Product      ProductBrief   `json:"product"`
	ChosenOption map[string]any `json:"chosen_option"`
}

type OrderView struct {
	ID           uint              `json:"id"`
	OrderDetails []OrderDetailView `json:"order_details"`
	Status       string            `json:"status"`
	TotalPrice   int64             `json:"total_price"`
}

// ----- Reconciliation -----

// Create opens a new Waiting order for userID and runs one reconciliation
// pass over it.
func (s *OrderService) Create(userID uint, items []OrderItemIn) (*OrderView, error) {
	return s.reconcile(userID, nil, items)
}

// Update wholesale-replaces the details of an existing order. The order
// must be owned by userID and still Waiting; otherwise ErrOrderNotFound.
func (s *OrderService) Update(userID, orderID uint, items []OrderItemIn) (*OrderView, error) {
	return s.reconcile(userID, &orderID, items)
}

// reconcile swaps the order's entire detail set for the submitted one in a
// single transaction. Either every new detail lands, or the rollback leaves
// the previous set untouched. No notification fires here; only status
// changes notify.
func (s *OrderService) reconcile(userID uint, orderID *uint, items []OrderItemIn) (*OrderView, error) {
	// Rejected before the transaction opens: an order may never end up empty.
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}

	var id uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// The lifecycle gate runs before payload validation: a target that
		// is absent, foreign or no longer Waiting stays a 404 no matter
		// what the payload contains.
		var order *entity.Order
		if orderID != nil {
			var err error
			order, err = s.Repo.GetWaitingOrderForUser(tx, userID, *orderID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			if err != nil {
				return err
			}
		}

		ok, err := s.Products.AllExist(tx, ids)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProductNotFound
		}

		if order == nil {
			order = &entity.Order{UserID: userID, Status: entity.StatusWaiting}
			if err := s.Repo.CreateOrder(tx, order); err != nil {
				return err
			}
		}

		details := make([]entity.OrderDetail, 0, len(items))
		for _, it := range items {
			details = append(details, entity.OrderDetail{
				ProductID:    it.ProductID,
				ChosenOption: mergeChosenOption(it.ChosenOption),
			})
		}
		if err := s.Repo.ReplaceDetails(tx, order.ID, details); err != nil {
			// A reference that slipped past the count check is still the
			// caller's bad input, not a server fault.
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrProductNotFound
			}
			return err
		}

		id = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(id)
}

// mergeChosenOption lays the caller's selections over the category
// defaults; caller values win key-by-key.
func mergeChosenOption(overrides map[string]any) datatypes.JSONMap {
	merged := datatypes.JSONMap(entity.DefaultChosenOption())
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// ----- Reads -----

// ListForUser returns the caller's Waiting orders. The filter is a listing
// convenience, not a security boundary; Detail shows any owned order.
func (s *OrderService) ListForUser(userID uint) ([]OrderView, error) {
	orders, err := s.Repo.ListWaitingForUser(userID)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v, err := s.view(o.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.view(o.ID)
}

// Detail returns an order's wire representation with no ownership filter;
// the staff channel responds with it after a status write.
func (s *OrderService) Detail(orderID uint) (*OrderView, error) {
	v, err := s.view(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return v, err
}

// Delete removes a Waiting order owned by userID together with all its
// details.
func (s *OrderService) Delete(userID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetWaitingOrderForUser(tx, userID, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		return s.Repo.DeleteOrder(tx, o.ID)
	})
}

// view assembles the wire representation: details with live product data
// and the derived total. Prices are never copied onto the order, so the
// total always reflects the catalog as of this read.
func (s *OrderService) view(orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	details, err := s.Repo.GetDetails(orderID)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.TotalPrice(orderID)
	if err != nil {
		return nil, err
	}

	views := make([]OrderDetailView, 0, len(details))
	for _, d := range details {
		views = append(views, OrderDetailView{
			Product: ProductBrief{
				ID:    d.Product.ID,
				Name:  d.Product.Name,
				Price: d.Product.Price,
			},
			ChosenOption: map[string]any(d.ChosenOption),
		})
	}
	return &OrderView{
		ID:           o.ID,
		OrderDetails: views,
		Status:       o.Status.Label(),
		TotalPrice:   total,
	}, nil
}
