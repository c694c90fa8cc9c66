package models

import "time"

// Notification is the DB shape of one recorded decision communication.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	ContextType    string    `db:"context_type"`
	ContextID      string    `db:"context_id"`
	Channel        string    `db:"channel"`
	Decision       string    `db:"decision"`
	ReasonCodes    []string  `db:"reason_codes"`
	DeliveryStatus string    `db:"delivery_status"`
	RequestedBy    string    `db:"requested_by"`
	CreatedAt      time.Time `db:"created_at"`
}
