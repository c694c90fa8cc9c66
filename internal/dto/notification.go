package dto

import (
	"time"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// SendNotificationRequest carries the decision to communicate. The context
// type is implied by the route; the application id comes from the path.
type SendNotificationRequest struct {
	Channel     domain.NotificationChannel `json:"channel" binding:"required,oneof=EMAIL SMS APP"`
	Decision    domain.Decision            `json:"decision" binding:"required,oneof=APPROVED REJECTED"`
	ReasonCodes []string                   `json:"reasonCodes" binding:"omitempty,dive,reasoncode"`
}

// NotificationResponse mirrors domain.Notification.
type NotificationResponse struct {
	NotificationID string                         `json:"notificationID"`
	ContextType    domain.NotificationContextType `json:"contextType"`
	ContextID      string                         `json:"contextID"`
	Channel        domain.NotificationChannel     `json:"channel"`
	Decision       domain.Decision                `json:"decision"`
	ReasonCodes    []string                       `json:"reasonCodes"`
	DeliveryStatus string                         `json:"deliveryStatus"`
	RequestedBy    string                         `json:"requestedBy"`
	CreatedAt      time.Time                      `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		ContextType:    n.ContextType,
		ContextID:      n.ContextID,
		Channel:        n.Channel,
		Decision:       n.Decision,
		ReasonCodes:    emptyIfNil(n.ReasonCodes),
		DeliveryStatus: n.DeliveryStatus,
		RequestedBy:    n.RequestedBy,
		CreatedAt:      n.CreatedAt,
	}
}
