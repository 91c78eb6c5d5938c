package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carshield-admin-api/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		kind    model.CollisionKind
	}{
		{"name and phone", "الاسم ورقم الهاتف موجودان مسبقاً", model.CollisionNameAndPhone},
		{"phone only", "رقم الهاتف موجود مسبقاً", model.CollisionPhoneOnly},
		{"name only", "الاسم موجود مسبقاً في النظام", model.CollisionNameOnly},
		{"unrecognized wording falls back to name", "سجل مطابق", model.CollisionNameOnly},
		{"empty falls back to name", "", model.CollisionNameOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Classify(tt.message))
		})
	}
}

func TestPromptVariants(t *testing.T) {
	kinds := []model.CollisionKind{
		model.CollisionNameAndPhone, model.CollisionPhoneOnly, model.CollisionNameOnly,
	}

	seen := map[string]bool{}
	for _, kind := range kinds {
		p := Prompt(kind)
		assert.Equal(t, kind, p.Title)
		assert.NotEmpty(t, p.Heading)
		assert.NotEmpty(t, p.ConfirmLabel)
		assert.NotEmpty(t, p.CancelLabel)
		assert.False(t, seen[p.Heading], "each kind carries distinct wording")
		seen[p.Heading] = true
	}

	// unknown kinds render the generic name-exists dialog
	assert.Equal(t, Prompt(model.CollisionNameOnly), Prompt(model.CollisionKind("other")))
}
