package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshield-admin-api/internal/model"
)

func validClient() model.DraftClient {
	return model.DraftClient{
		FirstName:  "محمد",
		SecondName: "عبدالله",
		ThirdName:  "سعد",
		LastName:   "العتيبي",
		Phone:      "0551234567",
		Branch:     "الرياض",
	}
}

func fieldsOf(errs []model.FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateClient(t *testing.T) {
	assert.Empty(t, ValidateClient(validClient()))

	t.Run("missing names", func(t *testing.T) {
		c := validClient()
		c.FirstName = ""
		c.LastName = ""
		fields := fieldsOf(ValidateClient(c))
		assert.Contains(t, fields, "first_name")
		assert.Contains(t, fields, "last_name")
		assert.NotContains(t, fields, "phone")
	})

	t.Run("non-arabic name", func(t *testing.T) {
		c := validClient()
		c.SecondName = "Abdullah"
		assert.Contains(t, fieldsOf(ValidateClient(c)), "second_name")
	})

	t.Run("bad phone", func(t *testing.T) {
		c := validClient()
		c.Phone = "123"
		assert.Contains(t, fieldsOf(ValidateClient(c)), "phone")
	})

	t.Run("optional second phone validated when present", func(t *testing.T) {
		c := validClient()
		c.SecondPhone = "061234"
		assert.Contains(t, fieldsOf(ValidateClient(c)), "second_phone")

		c.SecondPhone = ""
		assert.Empty(t, ValidateClient(c))
	})
}

func validVehicle() model.DraftVehicle {
	return model.DraftVehicle{
		Manufacturer: "تويوتا",
		Model:        "كامري",
		PlateNumber:  "ABC1234",
		Size:         model.SizeMedium,
	}
}

func TestValidateVehicle(t *testing.T) {
	assert.Empty(t, ValidateVehicle(validVehicle()))

	t.Run("plate with placeholder slot", func(t *testing.T) {
		v := validVehicle()
		v.PlateNumber = "ABC123_"
		assert.Contains(t, fieldsOf(ValidateVehicle(v)), "plate_number")
	})

	t.Run("8 character plate accepted", func(t *testing.T) {
		v := validVehicle()
		v.PlateNumber = "ABC12345"
		assert.Empty(t, ValidateVehicle(v))
	})

	t.Run("missing size", func(t *testing.T) {
		v := validVehicle()
		v.Size = ""
		assert.Contains(t, fieldsOf(ValidateVehicle(v)), "size")
	})
}

func TestValidateServices(t *testing.T) {
	t.Run("at least one service", func(t *testing.T) {
		byItem := ValidateServices(nil)
		require.NotNil(t, byItem)
		assert.Contains(t, byItem, -1)
	})

	t.Run("protection requires finish and coverage", func(t *testing.T) {
		byItem := ValidateServices([]model.DraftService{{Category: model.CategoryProtection}})
		require.Contains(t, byItem, 0)
		fields := fieldsOf(byItem[0])
		assert.Contains(t, fields, "protection_finish")
		assert.Contains(t, fields, "protection_coverage")
	})

	t.Run("glossy finish requires size", func(t *testing.T) {
		svc := model.DraftService{
			Category:           model.CategoryProtection,
			ProtectionFinish:   model.FinishGlossy,
			ProtectionCoverage: "full",
		}
		byItem := ValidateServices([]model.DraftService{svc})
		require.Contains(t, byItem, 0)
		assert.Contains(t, fieldsOf(byItem[0]), "protection_size")

		svc.ProtectionSize = "8"
		assert.Nil(t, ValidateServices([]model.DraftService{svc}))
	})

	t.Run("price below minimum", func(t *testing.T) {
		price := 20.0
		svc := model.DraftService{
			Category:   model.CategoryPolish,
			PolishType: model.PolishInternal,
			Price:      &price,
		}
		byItem := ValidateServices([]model.DraftService{svc})
		require.Contains(t, byItem, 0)
		assert.Contains(t, fieldsOf(byItem[0]), "price")
	})

	t.Run("guarantee requires duration start and terms", func(t *testing.T) {
		svc := model.DraftService{
			Category:          model.CategoryInsulator,
			InsulatorType:     "ceramic",
			InsulatorCoverage: "full",
			Guarantee:         &model.Guarantee{},
		}
		byItem := ValidateServices([]model.DraftService{svc})
		require.Contains(t, byItem, 0)
		fields := fieldsOf(byItem[0])
		assert.Contains(t, fields, "guarantee_duration")
		assert.Contains(t, fields, "guarantee_start")
		assert.Contains(t, fields, "guarantee_terms")
	})

	t.Run("only invalid items are reported", func(t *testing.T) {
		ok := model.DraftService{Category: model.CategoryPolish, PolishType: "seats"}
		bad := model.DraftService{Category: model.CategoryAdditions}
		byItem := ValidateServices([]model.DraftService{ok, bad})
		assert.NotContains(t, byItem, 0)
		assert.Contains(t, byItem, 1)
	})
}
