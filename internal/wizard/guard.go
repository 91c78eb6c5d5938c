package wizard

import (
	"strings"

	"carshield-admin-api/internal/model"
)

// The lookup service reports collisions as human-readable Arabic sentences.
// Classification is by substring match against the known wordings; any
// unrecognized sentence falls back to the generic name-exists presentation.
const (
	fragmentNameAndPhone = "الاسم ورقم الهاتف"
	fragmentPhone        = "رقم الهاتف"
)

// Classify maps a lookup collision message to its presentation kind.
func Classify(message string) model.CollisionKind {
	switch {
	case strings.Contains(message, fragmentNameAndPhone):
		return model.CollisionNameAndPhone
	case strings.Contains(message, fragmentPhone):
		return model.CollisionPhoneOnly
	default:
		return model.CollisionNameOnly
	}
}

// Prompt returns the confirmation-dialog wording for a collision kind.
func Prompt(kind model.CollisionKind) model.DuplicatePrompt {
	switch kind {
	case model.CollisionNameAndPhone:
		return model.DuplicatePrompt{
			Title:        kind,
			Heading:      "الاسم ورقم الهاتف مسجلان مسبقاً",
			ConfirmLabel: "إضافة العميل على أي حال",
			CancelLabel:  "مراجعة البيانات",
		}
	case model.CollisionPhoneOnly:
		return model.DuplicatePrompt{
			Title:        kind,
			Heading:      "رقم الهاتف مسجل مسبقاً",
			ConfirmLabel: "متابعة بنفس الرقم",
			CancelLabel:  "تعديل الرقم",
		}
	default:
		return model.DuplicatePrompt{
			Title:        model.CollisionNameOnly,
			Heading:      "الاسم مسجل مسبقاً",
			ConfirmLabel: "متابعة",
			CancelLabel:  "إلغاء",
		}
	}
}
