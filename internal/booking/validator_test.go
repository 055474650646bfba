package booking

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedValidator() *Validator {
	return NewValidator(func() time.Time {
		return time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	})
}

func validDraft() Draft {
	return Draft{
		Name:           "Rahul Sharma",
		Email:          "rahul@example.com",
		Phone:          "9876543210",
		PackageType:    PackageBaraatBand,
		Date:           "2025-11-20",
		Venue:          "Shanti Lawn",
		City:           "Agra",
		BandTime:       Slot7To9PM,
		NumberOfPeople: 15,
		NumberOfLights: 10,
		GhodaBaggi:     1,
		Amount:         30000,
		AdvancePayment: 9000,
	}
}

func TestValidateStepOneScenarioA(t *testing.T) {
	v := fixedValidator()
	d := Draft{Name: "Jo", Email: "x", Phone: "12345"}

	res := v.Validate(d, FieldsForStep(StepPersonal, d))

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.Equal(t, "Invalid email address", res.Errors[FieldEmail])
	assert.Equal(t, "Invalid phone number", res.Errors[FieldPhone])
	assert.NotContains(t, res.Errors, FieldName)
}

func TestValidateOnlyChecksSubset(t *testing.T) {
	v := fixedValidator()
	d := Draft{Name: "Jo"}
	res := v.Validate(d, FieldSet{FieldName})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)

	assert.True(t, v.Validate(Draft{}, nil).Valid)
}

func TestValidateAllSteps(t *testing.T) {
	v := fixedValidator()
	d := validDraft()
	for _, step := range FormSteps {
		res := v.Validate(d, FieldsForStep(step, d))
		assert.True(t, res.Valid, "step %d: %v", step, res.Errors)
	}
}

func TestValidateEventStep(t *testing.T) {
	v := fixedValidator()

	d := Draft{PackageType: "Other", Date: "2025-06-14", Venue: "A", City: ""}
	res := v.Validate(d, FieldsForStep(StepEvent, d))
	assert.Equal(t, map[FieldID]string{
		FieldPackageType: "Please select a package",
		FieldDate:        "Event date cannot be in the past",
		FieldVenue:       "Venue is required",
		FieldCity:        "City is required",
	}, res.Errors)

	d = Draft{PackageType: PackageReception, Date: "", Venue: "Hall", City: "Agra"}
	res = v.Validate(d, FieldsForStep(StepEvent, d))
	assert.Equal(t, "Please select a date", res.Errors[FieldDate])

	d.Date = "20/11/2025"
	res = v.Validate(d, FieldsForStep(StepEvent, d))
	assert.Equal(t, "Please select a date", res.Errors[FieldDate])

	d.Date = "2025-11-20Tgarbage"
	res = v.Validate(d, FieldsForStep(StepEvent, d))
	assert.Equal(t, "Please select a date", res.Errors[FieldDate])

	d.Date = "2025-11-20T10:00:00Z"
	res = v.Validate(d, FieldsForStep(StepEvent, d))
	assert.Equal(t, "Please select a date", res.Errors[FieldDate])

	d.Date = "2025-06-15"
	assert.True(t, v.Validate(d, FieldsForStep(StepEvent, d)).Valid, "today is allowed")
}

func TestValidateAmountCeiling(t *testing.T) {
	v := fixedValidator()
	d := validDraft()
	d.Fireworks = true
	d.Amount = MaxAmount
	d.FireworksAmount = MaxAmount
	d.AdvancePayment = MaxAmount
	for _, step := range FormSteps {
		res := v.Validate(d, FieldsForStep(step, d))
		assert.True(t, res.Valid, "step %d: %v", step, res.Errors)
	}

	d.Amount = MaxAmount + 1
	d.AdvancePayment = math.MaxInt64
	res := v.Validate(d, FieldsForStep(StepPayment, d))
	assert.Equal(t, map[FieldID]string{
		FieldAmount:         "Amount is too large",
		FieldAdvancePayment: "Amount is too large",
	}, res.Errors)

	d.Amount = 0
	d.AdvancePayment = 0
	d.FireworksAmount = MaxAmount + 1
	res = v.Validate(d, FieldsForStep(StepFeatures, d))
	assert.Equal(t, "Amount is too large", res.Errors[FieldFireworksAmount])
}

func TestValidateFeatureStep(t *testing.T) {
	v := fixedValidator()
	d := Draft{
		PackageType:     PackageBaraatBand,
		BandTime:        SlotCustom,
		NumberOfPeople:  -1,
		NumberOfLights:  3,
		Fireworks:       true,
		FireworksAmount: -5,
	}
	res := v.Validate(d, FieldsForStep(StepFeatures, d))
	assert.Equal(t, map[FieldID]string{
		FieldCustomTimeSlot:  "Please describe the custom time slot",
		FieldNumberOfPeople:  "Must be 0 or greater",
		FieldFireworksAmount: "Must be 0 or greater",
	}, res.Errors)

	d.BandTime = "Midnight"
	res = v.Validate(d, FieldsForStep(StepFeatures, d))
	assert.Equal(t, "Invalid time slot", res.Errors[FieldBandTime])
}

func TestValidateAdditionalPhone(t *testing.T) {
	v := fixedValidator()
	d := validDraft()
	d.AdditionalPhone = "123"
	res := v.Validate(d, FieldsForStep(StepPersonal, d))
	assert.Equal(t, map[FieldID]string{FieldAdditionalPhone: "Invalid phone number"}, res.Errors)
}

// Scenario B: the carriage count is not required once the ghodi is chosen.
func TestIrrelevantFieldsNeverBlock(t *testing.T) {
	v := fixedValidator()
	d := validDraft()
	d.GhodiForBaraat = true
	d.GhodaBaggi = -3

	fields := FieldsForStep(StepFeatures, d)
	assert.NotContains(t, fields, FieldGhodaBaggi)
	assert.True(t, v.Validate(d, fields).Valid)

	d.PackageType = PackageFullWedding
	d.NumberOfPeople = -1
	d.NumberOfDhols = -1
	d.BandTime = "bogus"
	assert.True(t, v.Validate(d, FieldsForStep(StepFeatures, d)).Valid)
}

func TestAdvanceGoesPastFullWeddingFeatures(t *testing.T) {
	v := fixedValidator()
	w := NewWizard("w")
	w.Step = StepFeatures
	w.Draft = Draft{PackageType: PackageFullWedding, NumberOfPeople: -4}
	res := w.Advance(v)
	assert.True(t, res.Valid)
	assert.Equal(t, StepPayment, w.Step)
}

func TestValidateIsIdempotent(t *testing.T) {
	v := fixedValidator()
	d := Draft{Name: "J", Email: "bad", Phone: "1", PackageType: PackageDholOnly, BandTime: SlotCustom, NumberOfDhols: -2}
	before := d
	for _, step := range FormSteps {
		first := v.Validate(d, FieldsForStep(step, d))
		second := v.Validate(d, FieldsForStep(step, d))
		assert.Equal(t, first, second, "step %d", step)
	}
	assert.Equal(t, before, d)
}
