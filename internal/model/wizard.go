package model

// WizardStep is the current position in the three-step intake flow.
type WizardStep int

const (
	StepClient WizardStep = iota + 1
	StepVehicle
	StepServices
)

func (s WizardStep) String() string {
	switch s {
	case StepClient:
		return "client"
	case StepVehicle:
		return "vehicle"
	case StepServices:
		return "services"
	}
	return "unknown"
}

// PendingAction is the action retained while a duplicate decision is awaited.
type PendingAction string

const (
	ActionNext PendingAction = "next"
	ActionSave PendingAction = "save"
)

// CollisionKind classifies the duplicate-lookup collision message.
type CollisionKind string

const (
	CollisionNameAndPhone CollisionKind = "name_and_phone"
	CollisionNameOnly     CollisionKind = "name"
	CollisionPhoneOnly    CollisionKind = "phone"
)

// DuplicatePrompt is the dialog wording for one collision kind.
type DuplicatePrompt struct {
	Title        CollisionKind `json:"kind"`
	Heading      string        `json:"heading"`
	ConfirmLabel string        `json:"confirm_label"`
	CancelLabel  string        `json:"cancel_label"`
}

// PendingDecision is the retained context of the AwaitingDuplicateDecision
// sub-state: the frozen candidate draft, the action to replay on confirm, and
// the classified collision.
type PendingDecision struct {
	Action  PendingAction `json:"action"`
	Draft   DraftClient   `json:"draft"`
	Kind    CollisionKind `json:"kind"`
	Message string        `json:"message"`
}

// NotificationLevel distinguishes blocking failures from transient notices.
type NotificationLevel string

const (
	NoticeInfo    NotificationLevel = "info"
	NoticeWarning NotificationLevel = "warning"
	NoticeError   NotificationLevel = "error"
)

// Notification is a user-facing message produced by a wizard transition.
// Blocking notifications accompany commit failures; warnings are the
// fail-open side channel of the duplicate guard.
type Notification struct {
	Level    NotificationLevel `json:"level"`
	Blocking bool              `json:"blocking"`
	Message  string            `json:"message"`
}

// FieldError is a per-field validation failure. It blocks step advancement
// but is never raised as an error value to the caller's process.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WizardState is the full state of one intake session. It is owned by the
// wizard.Wizard that holds it; other packages receive copies.
type WizardState struct {
	Step     WizardStep     `json:"step"`
	Client   DraftClient    `json:"client"`
	Vehicle  DraftVehicle   `json:"vehicle"`
	Services []DraftService `json:"services"`

	// Frozen snapshots, captured on successful advancement past a step.
	FrozenClient  *DraftClient  `json:"frozen_client,omitempty"`
	FrozenVehicle *DraftVehicle `json:"frozen_vehicle,omitempty"`

	// ClientID is set once an intermediate commit has created the client row.
	ClientID string `json:"client_id,omitempty"`

	// Pending is non-nil while AwaitingDuplicateDecision is active.
	Pending *PendingDecision `json:"pending,omitempty"`

	ClientErrors  []FieldError         `json:"client_errors,omitempty"`
	VehicleErrors []FieldError         `json:"vehicle_errors,omitempty"`
	ServiceErrors map[int][]FieldError `json:"service_errors,omitempty"`

	Notifications []Notification `json:"notifications,omitempty"`
}
