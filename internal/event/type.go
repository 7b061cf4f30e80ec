package event

import (
	"time"
)

type PortalEventType string

const (
	PortalEventPreferencesCreated PortalEventType = "portal.preferences.created"
	PortalEventPreferencesUpdated PortalEventType = "portal.preferences.updated"
	PortalEventResumeCreated      PortalEventType = "portal.resume.created"
	PortalEventResumeUpdated      PortalEventType = "portal.resume.updated"
	PortalEventNotification       PortalEventType = "portal.notification"
)

// PortalEvent is the envelope published for every portal-side change or
// user-facing notification.
type PortalEvent struct {
	EventType      PortalEventType `json:"eventType"`
	UserID         string          `json:"userId"`
	Timestamp      time.Time       `json:"timestamp"`
	Resource       string          `json:"resource,omitempty"`
	SubscriptionID string          `json:"subscriptionId,omitempty"`
	Level          string          `json:"level,omitempty"`
	Message        string          `json:"message,omitempty"`
	Source         string          `json:"source,omitempty"`
}
