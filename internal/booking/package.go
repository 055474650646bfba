package booking

// PackageType is the service offering a booking is made for.
type PackageType string

const (
	PackageBaraatBand  PackageType = "Baraat Band Package"
	PackageDJBand      PackageType = "DJ Band Package"
	PackageDholOnly    PackageType = "Dhol Only Package"
	PackageReception   PackageType = "Reception Package"
	PackageFullWedding PackageType = "Full Wedding Package"
)

// PackageTypes lists every bookable package in display order.
var PackageTypes = []PackageType{
	PackageBaraatBand,
	PackageDJBand,
	PackageDholOnly,
	PackageReception,
	PackageFullWedding,
}

func (p PackageType) Valid() bool {
	for _, known := range PackageTypes {
		if p == known {
			return true
		}
	}
	return false
}

// Label is the text shown in the package picker.
func (p PackageType) Label() string {
	if p == PackageReception {
		return "Haldi / Mehendi / Sangeet / Reception Package"
	}
	return string(p)
}

// TimeSlot is the band's playing window.
type TimeSlot string

const (
	Slot7To9PM   TimeSlot = "7PM to 9PM"
	Slot10To12PM TimeSlot = "10PM to 12PM"
	Slot12To2PM  TimeSlot = "12PM to 2PM"
	SlotFullTime TimeSlot = "Full Time"
	SlotCustom   TimeSlot = "Custom"
)

var TimeSlots = []TimeSlot{Slot7To9PM, Slot10To12PM, Slot12To2PM, SlotFullTime, SlotCustom}

func (s TimeSlot) Valid() bool {
	for _, known := range TimeSlots {
		if s == known {
			return true
		}
	}
	return false
}
