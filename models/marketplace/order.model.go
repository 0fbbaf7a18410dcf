package marketplace

import "gorm.io/gorm"

// Order statuses. The lifecycle is forward-only:
// pending -> confirmed -> shipped -> delivered, with cancelled reachable
// from any state before delivered. Earnings count delivered orders only.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order references exactly one product, a buyer and a seller
type Order struct {
	gorm.Model
	Reference string  `json:"reference" gorm:"uniqueIndex;not null"`
	ProductID uint    `json:"product_id" gorm:"index;not null"`
	SellerID  uint    `json:"seller_id" gorm:"index;not null"`
	BuyerID   uint    `json:"buyer_id" gorm:"index;not null"`
	BuyerName string  `json:"buyer_name"`
	Amount    float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status    string  `json:"status" gorm:"default:'pending'"`
}
