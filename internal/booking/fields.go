package booking

// FieldID is a draft field, named as on the wire.
type FieldID string

const (
	FieldName            FieldID = "name"
	FieldEmail           FieldID = "email"
	FieldPhone           FieldID = "phone"
	FieldAdditionalPhone FieldID = "additionalPhone"
	FieldPackageType     FieldID = "packageType"
	FieldDate            FieldID = "date"
	FieldVenue           FieldID = "venue"
	FieldCity            FieldID = "city"
	FieldBandTime        FieldID = "bandTime"
	FieldCustomTimeSlot  FieldID = "customTimeSlot"
	FieldNumberOfPeople  FieldID = "numberOfPeople"
	FieldNumberOfLights  FieldID = "numberOfLights"
	FieldGhodiForBaraat  FieldID = "ghodiForBaraat"
	FieldGhodaBaggi      FieldID = "ghodaBaggi"
	FieldNumberOfDhols   FieldID = "numberOfDhols"
	FieldFireworks       FieldID = "fireworks"
	FieldFireworksAmount FieldID = "fireworksAmount"
	FieldFlowerCanon     FieldID = "flowerCanon"
	FieldDoliForVidai    FieldID = "DoliForVidai"
	FieldCustomization   FieldID = "customization"
	FieldAmount          FieldID = "amount"
	FieldAdvancePayment  FieldID = "advancePayment"
)

// FieldSet is an ordered list of fields.
type FieldSet []FieldID

func (s FieldSet) Contains(f FieldID) bool {
	for _, v := range s {
		if v == f {
			return true
		}
	}
	return false
}

// Toggles are the draft values that switch conditional fields on and off.
type Toggles struct {
	BandTime       TimeSlot
	GhodiForBaraat bool
	Fireworks      bool
}

func (d Draft) Toggles() Toggles {
	return Toggles{
		BandTime:       d.BandTime,
		GhodiForBaraat: d.GhodiForBaraat,
		Fireworks:      d.Fireworks,
	}
}

// RelevantFields is the single source of truth for which step-3 fields apply
// to a package. Validation, payload building and rendering all go through it.
func RelevantFields(pkg PackageType, t Toggles) FieldSet {
	out := PackageFields(pkg, t)
	return append(out, AddOnFields(t)...)
}

// PackageFields returns the package-specific part of RelevantFields.
func PackageFields(pkg PackageType, t Toggles) FieldSet {
	out := FieldSet{}
	switch pkg {
	case PackageBaraatBand, PackageDJBand:
		out = append(out, timeFields(t)...)
		if pkg == PackageBaraatBand {
			out = append(out, FieldNumberOfPeople)
		}
		out = append(out, FieldNumberOfLights, FieldGhodiForBaraat)
		if !t.GhodiForBaraat {
			out = append(out, FieldGhodaBaggi)
		}
	case PackageDholOnly:
		out = append(out, timeFields(t)...)
		out = append(out, FieldNumberOfDhols)
	}
	return out
}

// AddOnFields apply to every package.
func AddOnFields(t Toggles) FieldSet {
	out := FieldSet{FieldFireworks}
	if t.Fireworks {
		out = append(out, FieldFireworksAmount)
	}
	return append(out, FieldFlowerCanon, FieldDoliForVidai, FieldCustomization)
}

func timeFields(t Toggles) FieldSet {
	if t.BandTime == SlotCustom {
		return FieldSet{FieldBandTime, FieldCustomTimeSlot}
	}
	return FieldSet{FieldBandTime}
}

// featureFields is every field that can ever appear on step 3.
var featureFields = FieldSet{
	FieldBandTime, FieldCustomTimeSlot, FieldNumberOfPeople, FieldNumberOfLights,
	FieldGhodiForBaraat, FieldGhodaBaggi, FieldNumberOfDhols,
	FieldFireworks, FieldFireworksAmount, FieldFlowerCanon, FieldDoliForVidai, FieldCustomization,
}
