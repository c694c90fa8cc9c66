package domain

import "time"

// NotificationContextType discriminates which kind of application a
// notification was recorded against.
type NotificationContextType string

const (
	ContextCheckingApplication NotificationContextType = "CHECKING_APPLICATION"
	ContextLendingApplication  NotificationContextType = "LENDING_APPLICATION"
)

// NotificationChannel is the delivery channel requested by the caller.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelSMS   NotificationChannel = "SMS"
	ChannelApp   NotificationChannel = "APP"
)

// Decision is the final decision communicated to the applicant.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// Notification is one recorded decision communication. Append only, no dedup.
// RequestedBy is the authenticated caller that triggered the send; empty when
// the caller could not be determined.
type Notification struct {
	NotificationID string                  `json:"notificationID"`
	ContextType    NotificationContextType `json:"contextType"`
	ContextID      string                  `json:"contextID"`
	Channel        NotificationChannel     `json:"channel"`
	Decision       Decision                `json:"decision"`
	ReasonCodes    []string                `json:"reasonCodes"`
	DeliveryStatus string                  `json:"deliveryStatus"`
	RequestedBy    string                  `json:"requestedBy"`
	CreatedAt      time.Time               `json:"createdAt"`
}
