package wizard

import (
	"time"

	"carshield-admin-api/internal/guarantee"
	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/normalize"
)

// Validation messages shown next to the fields, in the operators' locale.
const (
	msgRequired    = "هذا الحقل إجباري"
	msgArabicOnly  = "يسمح بالأحرف العربية فقط"
	msgPhoneFormat = "رقم الهاتف يجب أن يتكون من 10 أرقام ويبدأ بـ 05"
	msgPlateFormat = "رقم اللوحة يجب أن يتكون من 7 أو 8 خانات بدون فراغات"
	msgPriceTooLow = "السعر يجب ألا يقل عن 50"
	msgDateFormat  = "صيغة التاريخ غير صحيحة"
	msgNoServices  = "أضف خدمة واحدة على الأقل"
)

// ValidateClient checks the first-step fields. Name components must be
// Arabic-script; the phone must already be in the normalized local format.
func ValidateClient(c model.DraftClient) []model.FieldError {
	var errs []model.FieldError

	names := []struct {
		field string
		value string
	}{
		{"first_name", c.FirstName},
		{"second_name", c.SecondName},
		{"third_name", c.ThirdName},
		{"last_name", c.LastName},
	}
	for _, n := range names {
		switch {
		case n.value == "":
			errs = append(errs, model.FieldError{Field: n.field, Message: msgRequired})
		case !normalize.IsArabicName(n.value):
			errs = append(errs, model.FieldError{Field: n.field, Message: msgArabicOnly})
		}
	}

	if c.Phone == "" {
		errs = append(errs, model.FieldError{Field: "phone", Message: msgRequired})
	} else if _, ok := normalize.Phone(c.Phone); !ok {
		errs = append(errs, model.FieldError{Field: "phone", Message: msgPhoneFormat})
	}
	if c.SecondPhone != "" {
		if _, ok := normalize.Phone(c.SecondPhone); !ok {
			errs = append(errs, model.FieldError{Field: "second_phone", Message: msgPhoneFormat})
		}
	}
	if c.Branch == "" {
		errs = append(errs, model.FieldError{Field: "branch", Message: msgRequired})
	}

	return errs
}

// ValidateVehicle checks the second-step fields.
func ValidateVehicle(v model.DraftVehicle) []model.FieldError {
	var errs []model.FieldError

	if v.Manufacturer == "" {
		errs = append(errs, model.FieldError{Field: "manufacturer", Message: msgRequired})
	}
	if v.Model == "" {
		errs = append(errs, model.FieldError{Field: "model", Message: msgRequired})
	}
	if v.PlateNumber == "" {
		errs = append(errs, model.FieldError{Field: "plate_number", Message: msgRequired})
	} else if _, ok := normalize.Plate(v.PlateNumber); !ok {
		errs = append(errs, model.FieldError{Field: "plate_number", Message: msgPlateFormat})
	}
	if v.Size == "" {
		errs = append(errs, model.FieldError{Field: "size", Message: msgRequired})
	}

	return errs
}

// ValidateServices checks the services array: at least one service, and each
// service's category-specific required fields.
func ValidateServices(services []model.DraftService) map[int][]model.FieldError {
	byItem := make(map[int][]model.FieldError)
	if len(services) == 0 {
		byItem[-1] = []model.FieldError{{Field: "services", Message: msgNoServices}}
		return byItem
	}

	for i, svc := range services {
		if errs := validateService(svc); len(errs) > 0 {
			byItem[i] = errs
		}
	}
	if len(byItem) == 0 {
		return nil
	}
	return byItem
}

func validateService(svc model.DraftService) []model.FieldError {
	var errs []model.FieldError

	require := func(field model.ServiceField, value string) {
		if value == "" {
			errs = append(errs, model.FieldError{Field: string(field), Message: msgRequired})
		}
	}

	switch svc.Category {
	case model.CategoryProtection:
		require(model.FieldProtectionFinish, svc.ProtectionFinish)
		require(model.FieldProtectionCoverage, svc.ProtectionCoverage)
		if svc.ProtectionFinish == model.FinishGlossy {
			require(model.FieldProtectionSize, svc.ProtectionSize)
		}
		if svc.ProtectionFinish == model.FinishColored {
			require(model.FieldProtectionColor, svc.ProtectionColor)
		}
	case model.CategoryInsulator:
		require(model.FieldInsulatorType, svc.InsulatorType)
		require(model.FieldInsulatorCoverage, svc.InsulatorCoverage)
	case model.CategoryPolish:
		require(model.FieldPolishType, svc.PolishType)
	case model.CategoryAdditions:
		require(model.FieldAdditionType, svc.AdditionType)
	default:
		errs = append(errs, model.FieldError{Field: "category", Message: msgRequired})
	}

	if svc.Price != nil && *svc.Price < model.MinServicePrice {
		errs = append(errs, model.FieldError{Field: string(model.FieldPrice), Message: msgPriceTooLow})
	}
	if svc.ServiceDate != "" {
		if _, err := time.Parse(guarantee.DateLayout, svc.ServiceDate); err != nil {
			errs = append(errs, model.FieldError{Field: string(model.FieldServiceDate), Message: msgDateFormat})
		}
	}

	if g := svc.Guarantee; g != nil {
		require(model.FieldGuaranteeDuration, g.Duration)
		require(model.FieldGuaranteeStart, g.StartDate)
		require(model.FieldGuaranteeTerms, g.Terms)
		if g.StartDate != "" {
			if _, err := time.Parse(guarantee.DateLayout, g.StartDate); err != nil {
				errs = append(errs, model.FieldError{Field: string(model.FieldGuaranteeStart), Message: msgDateFormat})
			}
		}
	}

	return errs
}
