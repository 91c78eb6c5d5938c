// Package variant owns the category-specific sub-field schema of a service
// and the clearing rules that keep it consistent. Call sites apply these
// functions synchronously whenever the triggering field changes; no stale
// sub-field value may survive a category or dependent-field switch.
package variant

import (
	"carshield-admin-api/internal/guarantee"
	"carshield-admin-api/internal/model"
)

// IsVariantField reports whether f is a category-owned sub-field (as opposed
// to a shared or guarantee field).
func IsVariantField(f model.ServiceField) bool {
	switch f {
	case model.FieldProtectionFinish, model.FieldProtectionSize,
		model.FieldProtectionCoverage, model.FieldProtectionColor,
		model.FieldInsulatorType, model.FieldInsulatorCoverage,
		model.FieldPolishType, model.FieldPolishLevel,
		model.FieldAdditionType, model.FieldWashScope:
		return true
	}
	return false
}

// ApplyCategoryChange switches svc to newCategory, clearing every variant
// sub-field of every category, and attaches or removes the guarantee: polish
// services never carry one, every other category defaults to an empty one.
// Idempotent: re-applying the same category yields the same cleared state.
func ApplyCategoryChange(svc *model.DraftService, newCategory model.ServiceCategory) {
	svc.Category = newCategory

	svc.ProtectionFinish = ""
	svc.ProtectionSize = ""
	svc.ProtectionCoverage = ""
	svc.ProtectionColor = ""
	svc.InsulatorType = ""
	svc.InsulatorCoverage = ""
	svc.PolishType = ""
	svc.PolishLevel = ""
	svc.AdditionType = ""
	svc.WashScope = ""

	if newCategory == model.CategoryPolish {
		svc.Guarantee = nil
	} else if svc.Guarantee == nil {
		svc.Guarantee = &model.Guarantee{}
	}
}

// ApplyFieldChange sets a variant sub-field and clears every sub-field whose
// visibility depends on it. Clearing never auto-populates: moving finish to
// glossy leaves size empty until the user picks one.
func ApplyFieldChange(svc *model.DraftService, field model.ServiceField, value string) {
	switch field {
	case model.FieldProtectionFinish:
		svc.ProtectionFinish = value
		if value != model.FinishGlossy {
			svc.ProtectionSize = ""
		}
		if value != model.FinishColored {
			svc.ProtectionColor = ""
		}
	case model.FieldProtectionSize:
		svc.ProtectionSize = value
	case model.FieldProtectionCoverage:
		svc.ProtectionCoverage = value
	case model.FieldProtectionColor:
		svc.ProtectionColor = value
	case model.FieldInsulatorType:
		svc.InsulatorType = value
	case model.FieldInsulatorCoverage:
		svc.InsulatorCoverage = value
	case model.FieldPolishType:
		svc.PolishType = value
		if value != model.PolishExternal && value != model.PolishInternalAndExternal {
			svc.PolishLevel = ""
		}
	case model.FieldPolishLevel:
		svc.PolishLevel = value
	case model.FieldAdditionType:
		svc.AdditionType = value
		if value != model.AdditionWash && value != model.AdditionDetailedWash {
			svc.WashScope = ""
		}
	case model.FieldWashScope:
		svc.WashScope = value
	}
}

// NewService returns a draft service initialized for a category, with the
// guarantee rule already applied and a default duration so the period
// calculator has something to work from once a start date is picked.
func NewService(category model.ServiceCategory) model.DraftService {
	svc := model.DraftService{}
	ApplyCategoryChange(&svc, category)
	if svc.Guarantee != nil {
		svc.Guarantee.Duration = model.GuaranteeDurations[0]
		guarantee.Recompute(svc.Guarantee)
	}
	return svc
}
