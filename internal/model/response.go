package model

import "time"

// StartWizardResponse is returned when a new intake session is created.
type StartWizardResponse struct {
	SessionID string `json:"session_id"`
}

// WizardStateResponse is the wizard snapshot served to the step renderers.
// Prompt is present only while a duplicate decision is awaited; notifications
// are drained on every read.
type WizardStateResponse struct {
	SessionID     string             `json:"session_id"`
	Step          WizardStep         `json:"step"`
	StepName      string             `json:"step_name"`
	State         WizardState        `json:"state"`
	Prompt        *DuplicatePrompt   `json:"prompt,omitempty"`
	Hijri         []GuaranteeDisplay `json:"hijri,omitempty"`
	Notifications []Notification     `json:"notifications,omitempty"`
}

// GuaranteeDisplay is the lunar-calendar projection of one service's
// guarantee window, rendered for display only.
type GuaranteeDisplay struct {
	ServiceIndex int    `json:"service_index"`
	StartHijri   string `json:"start_hijri,omitempty"`
	EndHijri     string `json:"end_hijri,omitempty"`
}

// FinalSaveResponse is returned when the full aggregate payload is committed.
type FinalSaveResponse struct {
	OrderID string `json:"order_id"`
}

// ValidationResponse carries per-field errors for a 422 reply.
type ValidationResponse struct {
	Error  string               `json:"error"`
	Fields []FieldError         `json:"fields,omitempty"`
	ByItem map[int][]FieldError `json:"by_item,omitempty"`
}

// ClientsResponse wraps the client listing feed.
type ClientsResponse struct {
	Clients []ClientRecord `json:"clients"`
}

// OrdersResponse wraps the order listing feed.
type OrdersResponse struct {
	Orders []OrderRecord `json:"orders"`
}

// HealthResponse is the health check reply.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the generic error reply body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
