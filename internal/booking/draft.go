package booking

import "modernband/internal/domain"

// Draft is the booking form as it is being filled in. Amounts are whole rupees.
type Draft struct {
	Name            string      `json:"name" validate:"min=2"`
	Email           string      `json:"email" validate:"required,email"`
	Phone           string      `json:"phone" validate:"phone"`
	AdditionalPhone string      `json:"additionalPhone" validate:"omitempty,phone"`
	PackageType     PackageType `json:"packageType" validate:"package"`
	Date            string      `json:"date" validate:"required,isodate,notpast"`
	Venue           string      `json:"venue" validate:"min=2"`
	City            string      `json:"city" validate:"min=2"`
	BandTime        TimeSlot    `json:"bandTime" validate:"omitempty,timeslot"`
	CustomTimeSlot  string      `json:"customTimeSlot" validate:"required"`
	NumberOfPeople  int         `json:"numberOfPeople" validate:"gte=0"`
	NumberOfLights  int         `json:"numberOfLights" validate:"gte=0"`
	GhodiForBaraat  bool        `json:"ghodiForBaraat"`
	GhodaBaggi      int         `json:"ghodaBaggi" validate:"gte=0"`
	NumberOfDhols   int         `json:"numberOfDhols" validate:"gte=0"`
	Fireworks       bool        `json:"fireworks"`
	FireworksAmount int64       `json:"fireworksAmount" validate:"gte=0,lte=1000000000000"`
	FlowerCanon     bool        `json:"flowerCanon"`
	DoliForVidai    bool        `json:"DoliForVidai"`
	Customization   string      `json:"customization"`
	Amount          int64       `json:"amount" validate:"gte=0,lte=1000000000000"`
	AdvancePayment  int64       `json:"advancePayment" validate:"gte=0,lte=1000000000000"`
}

// Record is a booking as stored by the backend.
type Record struct {
	ID domain.Stringish `json:"id"`
	Draft
	CreatedAt string `json:"createdAt,omitempty"`
}

// Payload returns a copy of d with conditional fields that no longer apply zeroed.
// A package change leaves earlier answers in the draft; they only disappear here.
func (d Draft) Payload() Draft {
	out := d
	relevant := RelevantFields(d.PackageType, d.Toggles())
	if !relevant.Contains(FieldBandTime) {
		out.BandTime = ""
	}
	if !relevant.Contains(FieldCustomTimeSlot) {
		out.CustomTimeSlot = ""
	}
	if !relevant.Contains(FieldNumberOfPeople) {
		out.NumberOfPeople = 0
	}
	if !relevant.Contains(FieldNumberOfLights) {
		out.NumberOfLights = 0
	}
	if !relevant.Contains(FieldGhodiForBaraat) {
		out.GhodiForBaraat = false
	}
	if !relevant.Contains(FieldGhodaBaggi) {
		out.GhodaBaggi = 0
	}
	if !relevant.Contains(FieldNumberOfDhols) {
		out.NumberOfDhols = 0
	}
	if !relevant.Contains(FieldFireworksAmount) {
		out.FireworksAmount = 0
	}
	return out
}

// Patch is a partial draft update; nil fields are left untouched.
type Patch struct {
	Name            *string      `json:"name,omitempty"`
	Email           *string      `json:"email,omitempty"`
	Phone           *string      `json:"phone,omitempty"`
	AdditionalPhone *string      `json:"additionalPhone,omitempty"`
	PackageType     *PackageType `json:"packageType,omitempty"`
	Date            *string      `json:"date,omitempty"`
	Venue           *string      `json:"venue,omitempty"`
	City            *string      `json:"city,omitempty"`
	BandTime        *TimeSlot    `json:"bandTime,omitempty"`
	CustomTimeSlot  *string      `json:"customTimeSlot,omitempty"`
	NumberOfPeople  *int         `json:"numberOfPeople,omitempty"`
	NumberOfLights  *int         `json:"numberOfLights,omitempty"`
	GhodiForBaraat  *bool        `json:"ghodiForBaraat,omitempty"`
	GhodaBaggi      *int         `json:"ghodaBaggi,omitempty"`
	NumberOfDhols   *int         `json:"numberOfDhols,omitempty"`
	Fireworks       *bool        `json:"fireworks,omitempty"`
	FireworksAmount *int64       `json:"fireworksAmount,omitempty"`
	FlowerCanon     *bool        `json:"flowerCanon,omitempty"`
	DoliForVidai    *bool        `json:"DoliForVidai,omitempty"`
	Customization   *string      `json:"customization,omitempty"`
	Amount          *int64       `json:"amount,omitempty"`
	AdvancePayment  *int64       `json:"advancePayment,omitempty"`
}

// apply merges the fields of p that are listed in allowed and reports whether anything changed.
func (d *Draft) apply(p Patch, allowed FieldSet) bool {
	before := *d
	setString(&d.Name, p.Name, allowed, FieldName)
	setString(&d.Email, p.Email, allowed, FieldEmail)
	setString(&d.Phone, p.Phone, allowed, FieldPhone)
	setString(&d.AdditionalPhone, p.AdditionalPhone, allowed, FieldAdditionalPhone)
	if p.PackageType != nil && allowed.Contains(FieldPackageType) {
		d.PackageType = *p.PackageType
	}
	setString(&d.Date, p.Date, allowed, FieldDate)
	setString(&d.Venue, p.Venue, allowed, FieldVenue)
	setString(&d.City, p.City, allowed, FieldCity)
	if p.BandTime != nil && allowed.Contains(FieldBandTime) {
		d.BandTime = *p.BandTime
	}
	setString(&d.CustomTimeSlot, p.CustomTimeSlot, allowed, FieldCustomTimeSlot)
	setInt(&d.NumberOfPeople, p.NumberOfPeople, allowed, FieldNumberOfPeople)
	setInt(&d.NumberOfLights, p.NumberOfLights, allowed, FieldNumberOfLights)
	setBool(&d.GhodiForBaraat, p.GhodiForBaraat, allowed, FieldGhodiForBaraat)
	setInt(&d.GhodaBaggi, p.GhodaBaggi, allowed, FieldGhodaBaggi)
	setInt(&d.NumberOfDhols, p.NumberOfDhols, allowed, FieldNumberOfDhols)
	setBool(&d.Fireworks, p.Fireworks, allowed, FieldFireworks)
	setInt64(&d.FireworksAmount, p.FireworksAmount, allowed, FieldFireworksAmount)
	setBool(&d.FlowerCanon, p.FlowerCanon, allowed, FieldFlowerCanon)
	setBool(&d.DoliForVidai, p.DoliForVidai, allowed, FieldDoliForVidai)
	setString(&d.Customization, p.Customization, allowed, FieldCustomization)
	setInt64(&d.Amount, p.Amount, allowed, FieldAmount)
	setInt64(&d.AdvancePayment, p.AdvancePayment, allowed, FieldAdvancePayment)
	return *d != before
}

func setString(dst *string, v *string, allowed FieldSet, f FieldID) {
	if v != nil && allowed.Contains(f) {
		*dst = *v
	}
}

func setInt(dst *int, v *int, allowed FieldSet, f FieldID) {
	if v != nil && allowed.Contains(f) {
		*dst = *v
	}
}

func setInt64(dst *int64, v *int64, allowed FieldSet, f FieldID) {
	if v != nil && allowed.Contains(f) {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool, allowed FieldSet, f FieldID) {
	if v != nil && allowed.Contains(f) {
		*dst = *v
	}
}
