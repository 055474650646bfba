package booking

import (
	"errors"
	"time"
)

// Step is a wizard position. Steps 1-4 collect input; StepSubmitted is terminal.
type Step int

const (
	StepPersonal Step = iota + 1
	StepEvent
	StepFeatures
	StepPayment
	StepSubmitted
)

var stepTitles = map[Step]string{
	StepPersonal:  "Personal Info",
	StepEvent:     "Event Details",
	StepFeatures:  "Features",
	StepPayment:   "Payment",
	StepSubmitted: "Booked",
}

func (s Step) Title() string { return stepTitles[s] }

// FormSteps are the input steps in order.
var FormSteps = []Step{StepPersonal, StepEvent, StepFeatures, StepPayment}

var (
	ErrSubmitting       = errors.New("a submission is already in progress")
	ErrAlreadySubmitted = errors.New("booking has already been submitted")
	ErrNotConfirmed     = errors.New("review and confirm the booking before submitting")
)

// FieldsForStep is what a step validates and displays for the draft as it stands.
func FieldsForStep(step Step, d Draft) FieldSet {
	switch step {
	case StepPersonal:
		return FieldSet{FieldName, FieldEmail, FieldPhone, FieldAdditionalPhone}
	case StepEvent:
		return FieldSet{FieldPackageType, FieldDate, FieldVenue, FieldCity}
	case StepFeatures:
		return RelevantFields(d.PackageType, d.Toggles())
	case StepPayment:
		return FieldSet{FieldAmount, FieldAdvancePayment}
	}
	return nil
}

// EditableFields is what a step accepts in a patch. Step 3 accepts every feature
// field because a toggle in the same patch can change which ones are relevant.
func EditableFields(step Step, d Draft) FieldSet {
	if step == StepFeatures {
		return featureFields
	}
	return FieldsForStep(step, d)
}

// Wizard holds one browser's progress through the booking form.
type Wizard struct {
	ID               string             `json:"id"`
	Step             Step               `json:"step"`
	Draft            Draft              `json:"draft"`
	Valid            map[Step]bool      `json:"valid"`
	Errors           map[FieldID]string `json:"errors,omitempty"`
	ShowConfirmation bool               `json:"showConfirmation"`
	Submitting       bool               `json:"submitting"`
	SubmitError      string             `json:"submitError,omitempty"`
	Record           *Record            `json:"record,omitempty"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func NewWizard(id string) *Wizard {
	return &Wizard{ID: id, Step: StepPersonal, Valid: map[Step]bool{}}
}

// Clone returns a deep copy safe to hand out of the store.
func (w *Wizard) Clone() *Wizard {
	out := *w
	out.Valid = make(map[Step]bool, len(w.Valid))
	for k, v := range w.Valid {
		out.Valid[k] = v
	}
	if w.Errors != nil {
		out.Errors = make(map[FieldID]string, len(w.Errors))
		for k, v := range w.Errors {
			out.Errors[k] = v
		}
	}
	if w.Record != nil {
		rec := *w.Record
		out.Record = &rec
	}
	return &out
}

func (w *Wizard) locked() bool {
	return w.Submitting || w.Step == StepSubmitted
}

// Advance validates the current step and moves forward when it passes.
// On the payment step a pass opens the confirmation instead.
func (w *Wizard) Advance(v *Validator) Result {
	if w.locked() {
		return Result{Valid: false}
	}
	res := v.Validate(w.Draft, FieldsForStep(w.Step, w.Draft))
	w.Valid[w.Step] = res.Valid
	w.Errors = res.Errors
	if !res.Valid {
		return res
	}
	if w.Step == StepPayment {
		w.ShowConfirmation = true
		return res
	}
	w.Step++
	w.ShowConfirmation = false
	return res
}

// Retreat moves back one step without validating. Step 1 stays put.
func (w *Wizard) Retreat() {
	if w.locked() {
		return
	}
	w.ShowConfirmation = false
	w.Errors = nil
	if w.Step > StepPersonal {
		w.Step--
	}
}

// Update merges the patch fields editable on the current step. Any change
// closes the confirmation so the user reviews the new values.
func (w *Wizard) Update(p Patch) error {
	if w.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if w.Submitting {
		return ErrSubmitting
	}
	if w.Draft.apply(p, EditableFields(w.Step, w.Draft)) {
		w.ShowConfirmation = false
		w.Valid[w.Step] = false
	}
	return nil
}

// BeginSubmit marks the wizard as submitting and returns the payload to send.
func (w *Wizard) BeginSubmit() (Draft, error) {
	switch {
	case w.Step == StepSubmitted:
		return Draft{}, ErrAlreadySubmitted
	case w.Submitting:
		return Draft{}, ErrSubmitting
	case !w.ShowConfirmation:
		return Draft{}, ErrNotConfirmed
	}
	w.Submitting = true
	w.SubmitError = ""
	return w.Draft.Payload(), nil
}

func (w *Wizard) CompleteSubmit(rec Record) {
	w.Submitting = false
	w.ShowConfirmation = false
	w.SubmitError = ""
	w.Record = &rec
	w.Step = StepSubmitted
}

// FailSubmit records the error and leaves the draft untouched so the user can retry.
func (w *Wizard) FailSubmit(msg string) {
	w.Submitting = false
	w.SubmitError = msg
}

// Preselect fills the package from a "Book This Package" link. It only applies
// to a wizard that has no package yet.
func (w *Wizard) Preselect(pkg PackageType) bool {
	if w.locked() || !pkg.Valid() || w.Draft.PackageType != "" {
		return false
	}
	w.Draft.PackageType = pkg
	return true
}
