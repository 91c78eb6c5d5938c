package model

// VehicleSize is the size band used to price protection material.
type VehicleSize string

const (
	SizeSmall  VehicleSize = "small"
	SizeMedium VehicleSize = "medium"
	SizeLarge  VehicleSize = "large"
	SizeSUV    VehicleSize = "suv"
	SizeTruck  VehicleSize = "truck"
)

// VehicleSizes lists the selectable size bands in display order.
var VehicleSizes = []VehicleSize{SizeSmall, SizeMedium, SizeLarge, SizeSUV, SizeTruck}

// DraftVehicle holds the vehicle fields collected on the second wizard step.
// PlateNumber is 7 or 8 alphanumeric characters; the 8th slot is optional.
type DraftVehicle struct {
	Manufacturer string      `json:"manufacturer"`
	Model        string      `json:"model"`
	Color        string      `json:"color"`
	PlateNumber  string      `json:"plate_number"`
	Size         VehicleSize `json:"size"`
}
