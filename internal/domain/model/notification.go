package model

// NotificationKind names the event a notification describes.
type NotificationKind string

const (
	NotifyPaymentReceived   NotificationKind = "payment_received"
	NotifyOrderAssigned     NotificationKind = "order_assigned"
	NotifyWorkStarted       NotificationKind = "work_started"
	NotifyOrderDelivered    NotificationKind = "order_delivered"
	NotifyRevisionRequested NotificationKind = "revision_requested"
)

// Notification is a fire-and-forget message to a user. Delivery failures are
// never allowed to fail the state transition that produced the notification.
type Notification struct {
	RecipientID int64
	Kind        NotificationKind
	OrderID     string
	Message     string
}
