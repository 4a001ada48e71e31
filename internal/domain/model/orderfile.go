package model

import "time"

// OrderFile is one original source document uploaded by the customer.
// Immutable once created; an order owns one or more of them.
type OrderFile struct {
	ID          int64
	OrderID     string
	FileName    string
	Path        string
	SizeBytes   int64
	ContentType string
	CreatedAt   time.Time
}
