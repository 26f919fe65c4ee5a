package entity

// OrderStatus is the single-letter lifecycle code persisted on an order.
// Lifecycle: Waiting → Preparation → Ready → Delivered.
type OrderStatus string

const (
	StatusWaiting     OrderStatus = "W"
	StatusPreparation OrderStatus = "P"
	StatusReady       OrderStatus = "R"
	StatusDelivered   OrderStatus = "D"
)

var statusLabels = map[OrderStatus]string{
	StatusWaiting:     "Waiting",
	StatusPreparation: "Preparation",
	StatusReady:       "Ready",
	StatusDelivered:   "Delivered",
}

func (s OrderStatus) Label() string {
	return statusLabels[s]
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseOrderStatus accepts either the stored code ("P") or the
// human-readable label ("Preparation").
func ParseOrderStatus(v string) (OrderStatus, bool) {
	if s := OrderStatus(v); s.Valid() {
		return s, true
	}
	for code, label := range statusLabels {
		if label == v {
			return code, true
		}
	}
	return "", false
}
