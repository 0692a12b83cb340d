package domain

import "errors"

var ErrCarNotFound = errors.New("car not found")
var ErrCarUnavailable = errors.New("car not available")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrResourceBusy = errors.New("resource busy")

// Car is a purchasable listing. OwnerID is empty while the car is still for
// sale; a successful purchase sets it exactly once. The owner transition is
// one-way: no resale is modelled.
type Car struct {
	ID      string `json:"id"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Price   int64  `json:"price"`
	OwnerID string `json:"ownerId,omitempty"`
}

func (c *Car) Available() bool { return c.OwnerID == "" }

// PurchaseEvent is broadcast to streaming subscribers after a purchase
// commits. Delivery is best-effort and out of band from the buy response.
type PurchaseEvent struct {
	Event   string `json:"event"`
	CarID   string `json:"carId"`
	BuyerID string `json:"buyerId"`
}
