package models

import "time"

// Callback statuses.
const (
	CallbackPending = "pending"
	CallbackDone    = "done"
)

// Callback is a "call this customer back" reminder tracked by reps.
type Callback struct {
	ID           string    `bson:"id" json:"id"`
	CustomerName string    `bson:"customer_name" json:"customerName"`
	Phone        string    `bson:"phone" json:"phone"`
	State        string    `bson:"state,omitempty" json:"state,omitempty"`
	CallbackDate string    `bson:"callback_date" json:"callbackDate"`
	CallbackTime string    `bson:"callback_time,omitempty" json:"callbackTime,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
