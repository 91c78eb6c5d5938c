package model

// ServiceCategory is the closed set of service kinds. Each category owns a
// disjoint group of sub-fields on DraftService; switching category clears all
// of them (see internal/variant).
type ServiceCategory string

const (
	CategoryProtection ServiceCategory = "protection"
	CategoryInsulator  ServiceCategory = "insulator"
	CategoryPolish     ServiceCategory = "polish"
	CategoryAdditions  ServiceCategory = "additions"
)

// ServiceCategories lists the selectable categories in display order.
var ServiceCategories = []ServiceCategory{
	CategoryProtection, CategoryInsulator, CategoryPolish, CategoryAdditions,
}

// Protection film sub-field values.
const (
	FinishGlossy  = "glossy"
	FinishMatte   = "matte"
	FinishColored = "colored"
)

// ProtectionSizes are the film thicknesses offered, in millimeters. Only
// meaningful when the finish is glossy.
var ProtectionSizes = []string{"6.5", "7.5", "8", "10"}

var ProtectionCoverages = []string{"full", "half", "quarter", "edges", "other"}

// Insulator sub-field values.
var (
	InsulatorTypes     = []string{"ceramic", "carbon", "crystal"}
	InsulatorCoverages = []string{"full", "half", "piece", "shield", "external"}
)

// Polish sub-field values. Level applies only to external and
// internal-and-external polish.
const (
	PolishExternal            = "external"
	PolishInternal            = "internal"
	PolishInternalAndExternal = "internal-and-external"
)

var (
	PolishTypes  = []string{PolishExternal, PolishInternal, PolishInternalAndExternal, "seats", "piece", "water-polish"}
	PolishLevels = []string{"1", "2", "3"}
)

// Additions sub-field values. WashScope applies only to the two wash types.
const (
	AdditionWash         = "wash"
	AdditionDetailedWash = "detailed-wash"
)

var (
	AdditionTypes = []string{"nano-interior", "nano-exterior", AdditionWash, AdditionDetailedWash, "sunshade", "rims"}
	WashScopes    = []string{"internal", "external", "internal-and-external", "engine"}
)

// MinServicePrice is the lowest accepted price when a price is entered.
const MinServicePrice = 50

// ServiceField names a mutable field of a DraftService or its Guarantee.
type ServiceField string

const (
	FieldProtectionFinish   ServiceField = "protection_finish"
	FieldProtectionSize     ServiceField = "protection_size"
	FieldProtectionCoverage ServiceField = "protection_coverage"
	FieldProtectionColor    ServiceField = "protection_color"
	FieldInsulatorType      ServiceField = "insulator_type"
	FieldInsulatorCoverage  ServiceField = "insulator_coverage"
	FieldPolishType         ServiceField = "polish_type"
	FieldPolishLevel        ServiceField = "polish_level"
	FieldAdditionType       ServiceField = "addition_type"
	FieldWashScope          ServiceField = "wash_scope"

	FieldDealDetails ServiceField = "deal_details"
	FieldPrice       ServiceField = "price"
	FieldServiceDate ServiceField = "service_date"

	FieldGuaranteeDuration ServiceField = "guarantee_duration"
	FieldGuaranteeStart    ServiceField = "guarantee_start"
	FieldGuaranteeEnd      ServiceField = "guarantee_end"
	FieldGuaranteeTerms    ServiceField = "guarantee_terms"
	FieldGuaranteeNotes    ServiceField = "guarantee_notes"
)

// Guarantee is the warranty attached to a service. EndDate is always derived
// from StartDate and Duration (internal/guarantee); it is never set directly.
type Guarantee struct {
	Duration  string `json:"duration"`   // e.g. "2 سنوات"
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, derived
	Terms     string `json:"terms"`
	Notes     string `json:"notes,omitempty"`
}

// GuaranteeDurations are the selectable duration labels.
var GuaranteeDurations = []string{
	"2 سنوات", "3 سنوات", "4 سنوات", "5 سنوات",
	"6 سنوات", "7 سنوات", "8 سنوات", "9 سنوات", "10 سنوات",
}

// DraftService is one performed service in the wizard's services step. Only
// the sub-fields of the current Category are ever populated; the rest stay
// empty. Polish services never carry a Guarantee, all other categories default
// to one.
type DraftService struct {
	Category ServiceCategory `json:"category"`

	ProtectionFinish   string `json:"protection_finish,omitempty"`
	ProtectionSize     string `json:"protection_size,omitempty"`
	ProtectionCoverage string `json:"protection_coverage,omitempty"`
	ProtectionColor    string `json:"protection_color,omitempty"`

	InsulatorType     string `json:"insulator_type,omitempty"`
	InsulatorCoverage string `json:"insulator_coverage,omitempty"`

	PolishType  string `json:"polish_type,omitempty"`
	PolishLevel string `json:"polish_level,omitempty"`

	AdditionType string `json:"addition_type,omitempty"`
	WashScope    string `json:"wash_scope,omitempty"`

	DealDetails string     `json:"deal_details,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	ServiceDate string     `json:"service_date,omitempty"` // YYYY-MM-DD
	Guarantee   *Guarantee `json:"guarantee,omitempty"`
}
