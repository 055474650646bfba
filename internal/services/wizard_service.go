package services

import (
	"context"
	"errors"
	"fmt"

	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/utils"

	"github.com/google/uuid"
)

type WizardService struct {
	Store     WizardStore
	Gateway   BookingGateway
	Validator *booking.Validator
	RequestID string
	NewID     func() string
}

func (s WizardService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s WizardService) Start() *booking.Wizard {
	w := booking.NewWizard(s.newID())
	s.Store.Put(w)
	utils.LogEvent(s.RequestID, "wizard", "start", "wizard_id="+w.ID)
	return w
}

// Resume returns the wizard for id, or a fresh one when id is unknown or expired.
func (s WizardService) Resume(id string) (*booking.Wizard, bool) {
	if id != "" {
		if w, err := s.Store.Get(id); err == nil {
			return w, false
		}
	}
	return s.Start(), true
}

func (s WizardService) Get(id string) (*booking.Wizard, error) {
	return s.Store.Get(id)
}

// Preselect applies a package chosen on the packages page; a no-op once a package is set.
func (s WizardService) Preselect(id string, pkg booking.PackageType) (*booking.Wizard, error) {
	return s.Store.Modify(id, func(w *booking.Wizard) error {
		if w.Preselect(pkg) {
			utils.LogEvent(s.RequestID, "wizard", "preselect", fmt.Sprintf("wizard_id=%s package=%q", id, pkg))
		}
		return nil
	})
}

func (s WizardService) Update(id string, p booking.Patch) (*booking.Wizard, error) {
	return s.Store.Modify(id, func(w *booking.Wizard) error {
		return conflictFrom(w.Update(p))
	})
}

// Next validates the current step and advances. A failed validation is not an error;
// the caller inspects the returned Result.
func (s WizardService) Next(id string) (*booking.Wizard, booking.Result, error) {
	var res booking.Result
	w, err := s.Store.Modify(id, func(w *booking.Wizard) error {
		if w.Submitting {
			return conflictFrom(booking.ErrSubmitting)
		}
		if w.Step == booking.StepSubmitted {
			return conflictFrom(booking.ErrAlreadySubmitted)
		}
		from := w.Step
		res = w.Advance(s.Validator)
		utils.LogEvent(s.RequestID, "wizard", "advance", fmt.Sprintf("wizard_id=%s step=%d valid=%t", id, from, res.Valid))
		return nil
	})
	return w, res, err
}

// RejectInput keeps the wizard on its step and shows input errors the patch could not
// carry, such as a number that did not parse, next to the step's validation errors.
func (s WizardService) RejectInput(id string, errs map[booking.FieldID]string) (*booking.Wizard, error) {
	return s.Store.Modify(id, func(w *booking.Wizard) error {
		if w.Submitting {
			return conflictFrom(booking.ErrSubmitting)
		}
		res := s.Validator.Validate(w.Draft, booking.FieldsForStep(w.Step, w.Draft))
		merged := make(map[booking.FieldID]string, len(res.Errors)+len(errs))
		for f, msg := range res.Errors {
			merged[f] = msg
		}
		for f, msg := range errs {
			merged[f] = msg
		}
		w.Valid[w.Step] = false
		w.ShowConfirmation = false
		w.Errors = merged
		utils.LogEvent(s.RequestID, "wizard", "reject_input", fmt.Sprintf("wizard_id=%s step=%d fields=%d", id, w.Step, len(errs)))
		return nil
	})
}

func (s WizardService) Back(id string) (*booking.Wizard, error) {
	return s.Store.Modify(id, func(w *booking.Wizard) error {
		w.Retreat()
		return nil
	})
}

// Submit sends the confirmed draft to the backend. The gateway call runs outside the
// store lock; the wizard's submitting flag keeps a second submit out meanwhile.
func (s WizardService) Submit(ctx context.Context, id string) (*booking.Wizard, error) {
	var payload booking.Draft
	if _, err := s.Store.Modify(id, func(w *booking.Wizard) error {
		p, err := w.BeginSubmit()
		if err != nil {
			return conflictFrom(err)
		}
		payload = p
		return nil
	}); err != nil {
		return nil, err
	}

	utils.LogEvent(s.RequestID, "wizard", "submit", fmt.Sprintf("wizard_id=%s package=%q", id, payload.PackageType))
	rec, err := s.Gateway.CreateBooking(ctx, payload)
	if err != nil {
		upErr := submissionError(err)
		utils.LogError(s.RequestID, "wizard", "submit", err)
		w, merr := s.Store.Modify(id, func(w *booking.Wizard) error {
			w.FailSubmit(upErr.Error())
			return nil
		})
		if merr != nil {
			return nil, merr
		}
		return w, upErr
	}

	w, err := s.Store.Modify(id, func(w *booking.Wizard) error {
		w.CompleteSubmit(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "wizard", "submitted", "wizard_id="+id+" booking_id="+rec.ID.String())
	return w, nil
}

// Discard drops the wizard; it fails with a conflict while a submission is in flight.
func (s WizardService) Discard(id string) error {
	if err := s.Store.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "wizard", "discard", "wizard_id="+id)
	return nil
}

func conflictFrom(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, booking.ErrSubmitting), errors.Is(err, booking.ErrAlreadySubmitted), errors.Is(err, booking.ErrNotConfirmed):
		return domain.ConflictError{Msg: err.Error(), Err: err}
	}
	return err
}
