package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestAdvanceGatesOnCurrentStep(t *testing.T) {
	v := fixedValidator()
	w := NewWizard("w1")
	w.Draft = Draft{Name: "Jo", Email: "x", Phone: "12345"}

	res := w.Advance(v)
	assert.False(t, res.Valid)
	assert.Equal(t, StepPersonal, w.Step)
	assert.Len(t, w.Errors, 2)
	assert.False(t, w.Valid[StepPersonal])

	w.Draft.Email = "jo@example.com"
	w.Draft.Phone = "9876543210"
	res = w.Advance(v)
	assert.True(t, res.Valid)
	assert.Equal(t, StepEvent, w.Step)
	assert.True(t, w.Valid[StepPersonal])
	assert.Empty(t, w.Errors)
}

func TestAdvanceThroughAllStepsOpensConfirmation(t *testing.T) {
	v := fixedValidator()
	w := NewWizard("w2")
	w.Draft = validDraft()

	for _, want := range []Step{StepEvent, StepFeatures, StepPayment} {
		require.True(t, w.Advance(v).Valid)
		assert.Equal(t, want, w.Step)
		assert.False(t, w.ShowConfirmation)
	}
	require.True(t, w.Advance(v).Valid)
	assert.Equal(t, StepPayment, w.Step)
	assert.True(t, w.ShowConfirmation)
}

func TestRetreat(t *testing.T) {
	w := NewWizard("w3")
	w.Retreat()
	w.Retreat()
	assert.Equal(t, StepPersonal, w.Step)

	for _, s := range []Step{StepEvent, StepFeatures, StepPayment} {
		w.Step = s
		w.Draft = Draft{}
		w.Retreat()
		assert.Equal(t, s-1, w.Step)
	}

	w.Step = StepPayment
	w.ShowConfirmation = true
	w.Retreat()
	assert.Equal(t, StepFeatures, w.Step)
	assert.False(t, w.ShowConfirmation)
}

func TestUpdateOnlyTouchesCurrentStep(t *testing.T) {
	w := NewWizard("w4")
	require.NoError(t, w.Update(Patch{Name: strp("Asha"), Venue: strp("Lawn")}))
	assert.Equal(t, "Asha", w.Draft.Name)
	assert.Empty(t, w.Draft.Venue)

	w.Step = StepFeatures
	w.Draft.PackageType = PackageBaraatBand
	require.NoError(t, w.Update(Patch{GhodiForBaraat: boolp(true), Fireworks: boolp(true)}))
	assert.True(t, w.Draft.GhodiForBaraat)
	assert.True(t, w.Draft.Fireworks)
}

func TestUpdateClosesConfirmation(t *testing.T) {
	w := NewWizard("w5")
	w.Step = StepPayment
	w.ShowConfirmation = true
	amount := int64(40000)
	require.NoError(t, w.Update(Patch{Amount: &amount}))
	assert.False(t, w.ShowConfirmation)

	w.ShowConfirmation = true
	require.NoError(t, w.Update(Patch{Amount: &amount}))
	assert.True(t, w.ShowConfirmation, "no-op patch keeps the confirmation open")
}

func TestSubmitLifecycle(t *testing.T) {
	v := fixedValidator()
	w := NewWizard("w6")
	w.Draft = validDraft()
	w.Step = StepPayment

	_, err := w.BeginSubmit()
	assert.ErrorIs(t, err, ErrNotConfirmed)

	require.True(t, w.Advance(v).Valid)
	payload, err := w.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, w.Draft.Payload(), payload)
	assert.True(t, w.Submitting)

	_, err = w.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmitting)
	assert.ErrorIs(t, w.Update(Patch{Name: strp("X")}), ErrSubmitting)

	w.CompleteSubmit(Record{ID: "b-1", Draft: payload})
	assert.Equal(t, StepSubmitted, w.Step)
	require.NotNil(t, w.Record)
	assert.Equal(t, "b-1", w.Record.ID.String())
	assert.ErrorIs(t, w.Update(Patch{}), ErrAlreadySubmitted)
	_, err = w.BeginSubmit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

// Scenario E: a failed submission leaves the draft exactly as it was.
func TestFailSubmitKeepsDraft(t *testing.T) {
	v := fixedValidator()
	w := NewWizard("w7")
	w.Draft = validDraft()
	w.Draft.PackageType = PackageDholOnly
	w.Draft.NumberOfPeople = 12
	w.Step = StepPayment
	require.True(t, w.Advance(v).Valid)
	before := w.Draft

	_, err := w.BeginSubmit()
	require.NoError(t, err)
	w.FailSubmit("network down")

	assert.Equal(t, before, w.Draft)
	assert.Equal(t, "network down", w.SubmitError)
	assert.False(t, w.Submitting)
	assert.True(t, w.ShowConfirmation)
	assert.Equal(t, StepPayment, w.Step)

	_, err = w.BeginSubmit()
	assert.NoError(t, err, "retry is allowed")
}

func TestCloneIsDeep(t *testing.T) {
	w := NewWizard("w8")
	w.Valid[StepPersonal] = true
	w.Errors = map[FieldID]string{FieldName: "x"}
	w.Record = &Record{ID: "1"}

	c := w.Clone()
	c.Valid[StepPersonal] = false
	c.Errors[FieldName] = "y"
	c.Record.ID = "2"

	assert.True(t, w.Valid[StepPersonal])
	assert.Equal(t, "x", w.Errors[FieldName])
	assert.Equal(t, "1", w.Record.ID.String())
}

func TestPreselectOnlyFillsEmptyPackage(t *testing.T) {
	w := NewWizard("w9")
	assert.False(t, w.Preselect("Kazoo Package"))
	assert.True(t, w.Preselect(PackageDJBand))
	assert.Equal(t, PackageDJBand, w.Draft.PackageType)
	assert.False(t, w.Preselect(PackageDholOnly))
	assert.Equal(t, PackageDJBand, w.Draft.PackageType)
}
