package model

import "time"

// OrderService is one service line of a committed order. Guarantee dates are
// normalized to UTC timestamps before crossing the persistence boundary.
type OrderService struct {
	Category ServiceCategory `json:"category"`

	ProtectionFinish   string `json:"protection_finish,omitempty"`
	ProtectionSize     string `json:"protection_size,omitempty"`
	ProtectionCoverage string `json:"protection_coverage,omitempty"`
	ProtectionColor    string `json:"protection_color,omitempty"`
	InsulatorType      string `json:"insulator_type,omitempty"`
	InsulatorCoverage  string `json:"insulator_coverage,omitempty"`
	PolishType         string `json:"polish_type,omitempty"`
	PolishLevel        string `json:"polish_level,omitempty"`
	AdditionType       string `json:"addition_type,omitempty"`
	WashScope          string `json:"wash_scope,omitempty"`

	DealDetails string     `json:"deal_details,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	ServiceDate *time.Time `json:"service_date,omitempty"`

	GuaranteeDuration string     `json:"guarantee_duration,omitempty"`
	GuaranteeStart    *time.Time `json:"guarantee_start,omitempty"`
	GuaranteeEnd      *time.Time `json:"guarantee_end,omitempty"`
	GuaranteeTerms    string     `json:"guarantee_terms,omitempty"`
	GuaranteeNotes    string     `json:"guarantee_notes,omitempty"`
}

// OrderPayload is the merged client + vehicle + services aggregate handed to
// the final-save collaborator at step three.
type OrderPayload struct {
	ClientID string         `json:"client_id,omitempty"`
	Client   DraftClient    `json:"client"`
	Vehicle  DraftVehicle   `json:"vehicle"`
	Services []OrderService `json:"services"`
}

// OrderRecord is a persisted order as served on the listing feed.
type OrderRecord struct {
	ID           string         `json:"id"`
	ClientID     string         `json:"client_id"`
	ClientName   string         `json:"client_name"`
	Phone        string         `json:"phone"`
	PlateNumber  string         `json:"plate_number"`
	Manufacturer string         `json:"manufacturer"`
	VehicleModel string         `json:"vehicle_model"`
	CreatedAt    time.Time      `json:"created_at"`
	Services     []OrderService `json:"services,omitempty"`
}
