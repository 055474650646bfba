package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/http/middleware"
	"modernband/internal/services"
	"modernband/internal/utils"

	"github.com/gin-gonic/gin"
)

const wizardCookie = "wizard_id"

type stepItem struct {
	Number  booking.Step
	Title   string
	Current bool
	Done    bool
}

type packageOption struct {
	Value    booking.PackageType
	Label    string
	Selected bool
}

type bookingView struct {
	W         *booking.Wizard
	Steps     []stepItem
	Packages  []packageOption
	TimeSlots []booking.TimeSlot
	Fields    booking.FieldSet
	Summary   booking.Summary
	Today     string
	Errors    map[booking.FieldID]string
	Notice    string
}

func (h *Handler) setWizardCookie(c *gin.Context, id string) {
	maxAge := int(h.Env.WizardTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(wizardCookie, id, maxAge, "/", "", h.Env.Production(), true)
}

// currentWizard resumes the browser's wizard or starts one, refreshing the cookie.
func (h *Handler) currentWizard(c *gin.Context, svc services.WizardService) *booking.Wizard {
	id, _ := c.Cookie(wizardCookie)
	w, _ := svc.Resume(id)
	h.setWizardCookie(c, w.ID)
	return w
}

// GET /booking
func (h *Handler) BookingPage(c *gin.Context) {
	svc := h.wizardService(c)
	w := h.currentWizard(c, svc)
	if pkg, ok := packageFromQuery(c); ok {
		if updated, err := svc.Preselect(w.ID, pkg); err == nil {
			w = updated
		}
	}
	c.HTML(http.StatusOK, "booking.html", h.page(c, "Book Now", "booking", gin.H{
		"Booking": h.bookingView(w, c.Query("notice")),
	}))
}

// POST /booking applies the posted step and the requested action, then redirects back.
func (h *Handler) BookingAction(c *gin.Context) {
	svc := h.wizardService(c)
	reqID := middleware.GetRequestID(c)

	id, _ := c.Cookie(wizardCookie)
	w, err := svc.Get(id)
	if err != nil {
		fresh := svc.Start()
		h.setWizardCookie(c, fresh.ID)
		c.Redirect(http.StatusSeeOther, "/booking?notice=expired")
		return
	}

	action := c.PostForm("action")
	postedStep, _ := strconv.Atoi(c.PostForm("step"))
	var inputErrs map[booking.FieldID]string
	if (action == "next" || action == "book" || action == "back") && booking.Step(postedStep) == w.Step {
		var p booking.Patch
		p, inputErrs = patchFromForm(c, w)
		if _, err := svc.Update(w.ID, p); err != nil && !domain.IsConflict(err) {
			RespondDomainError(c, err)
			return
		}
	}

	switch action {
	case "next", "book":
		if len(inputErrs) > 0 {
			_, err = svc.RejectInput(w.ID, inputErrs)
			break
		}
		_, _, err = svc.Next(w.ID)
	case "back":
		_, err = svc.Back(w.ID)
	case "confirm":
		_, err = svc.Submit(c.Request.Context(), w.ID)
		if _, ok := domain.AsUpstream(err); ok {
			err = nil
		}
	case "reset":
		if err = svc.Discard(w.ID); err == nil {
			fresh := svc.Start()
			h.setWizardCookie(c, fresh.ID)
		}
	default:
		utils.LogEvent(reqID, "booking_page", "unknown_action", "action="+action)
	}
	if err != nil && !domain.IsConflict(err) {
		RespondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/booking")
}

func (h *Handler) bookingView(w *booking.Wizard, notice string) bookingView {
	v := bookingView{
		W:         w,
		TimeSlots: booking.TimeSlots,
		Fields:    booking.RelevantFields(w.Draft.PackageType, w.Draft.Toggles()),
		Summary:   booking.Summarize(w.Draft),
		Today:     h.Validator.Today(),
		Errors:    w.Errors,
	}
	if notice == "expired" {
		v.Notice = "Your previous booking form expired. Please start again."
	}
	for _, s := range booking.FormSteps {
		v.Steps = append(v.Steps, stepItem{
			Number:  s,
			Title:   s.Title(),
			Current: s == w.Step,
			Done:    s < w.Step,
		})
	}
	for _, p := range booking.PackageTypes {
		v.Packages = append(v.Packages, packageOption{Value: p, Label: p.Label(), Selected: p == w.Draft.PackageType})
	}
	return v
}

// patchFromForm reads the inputs rendered for the wizard's current step. Unchecked
// checkboxes are absent from the form, so a rendered toggle that is missing means false.
func patchFromForm(c *gin.Context, w *booking.Wizard) (booking.Patch, map[booking.FieldID]string) {
	var p booking.Patch
	rendered := booking.FieldsForStep(w.Step, w.Draft)
	errs := map[booking.FieldID]string{}
	num := func(f booking.FieldID, raw string, present bool) *int64 {
		n, ok := parseAmount(raw, present)
		if !ok {
			errs[f] = "Please enter a whole number"
		}
		return n
	}
	small := func(f booking.FieldID, raw string, present bool) *int {
		n := num(f, raw, present)
		if n == nil {
			return nil
		}
		if *n > math.MaxInt32 || *n < math.MinInt32 {
			errs[f] = "Number is too large"
			return nil
		}
		v := int(*n)
		return &v
	}
	for _, f := range booking.EditableFields(w.Step, w.Draft) {
		raw, present := c.GetPostForm(string(f))
		raw = strings.TrimSpace(raw)
		switch f {
		case booking.FieldName:
			p.Name = strPtr(raw, present)
		case booking.FieldEmail:
			p.Email = strPtr(raw, present)
		case booking.FieldPhone:
			p.Phone = strPtr(raw, present)
		case booking.FieldAdditionalPhone:
			p.AdditionalPhone = strPtr(raw, present)
		case booking.FieldPackageType:
			if present {
				pkg := booking.PackageType(raw)
				p.PackageType = &pkg
			}
		case booking.FieldDate:
			p.Date = strPtr(raw, present)
		case booking.FieldVenue:
			p.Venue = strPtr(raw, present)
		case booking.FieldCity:
			p.City = strPtr(raw, present)
		case booking.FieldBandTime:
			if present {
				slot := booking.TimeSlot(raw)
				p.BandTime = &slot
			}
		case booking.FieldCustomTimeSlot:
			p.CustomTimeSlot = strPtr(raw, present)
		case booking.FieldNumberOfPeople:
			p.NumberOfPeople = small(f, raw, present)
		case booking.FieldNumberOfLights:
			p.NumberOfLights = small(f, raw, present)
		case booking.FieldGhodaBaggi:
			p.GhodaBaggi = small(f, raw, present)
		case booking.FieldNumberOfDhols:
			p.NumberOfDhols = small(f, raw, present)
		case booking.FieldFireworksAmount:
			p.FireworksAmount = num(f, raw, present)
		case booking.FieldCustomization:
			p.Customization = strPtr(raw, present)
		case booking.FieldAmount:
			p.Amount = num(f, raw, present)
		case booking.FieldAdvancePayment:
			p.AdvancePayment = num(f, raw, present)
		case booking.FieldGhodiForBaraat:
			p.GhodiForBaraat = checkbox(raw, present, rendered.Contains(f))
		case booking.FieldFireworks:
			p.Fireworks = checkbox(raw, present, rendered.Contains(f))
		case booking.FieldFlowerCanon:
			p.FlowerCanon = checkbox(raw, present, rendered.Contains(f))
		case booking.FieldDoliForVidai:
			p.DoliForVidai = checkbox(raw, present, rendered.Contains(f))
		}
	}
	if len(errs) == 0 {
		errs = nil
	}
	return p, errs
}

func strPtr(v string, present bool) *string {
	if !present {
		return nil
	}
	return &v
}

// parseAmount reads a number input. Empty means 0; anything that does not parse,
// overflow included, leaves the field untouched and reports false.
func parseAmount(v string, present bool) (*int64, bool) {
	if !present {
		return nil, true
	}
	if v == "" {
		var zero int64
		return &zero, true
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func checkbox(v string, present, rendered bool) *bool {
	if !present && !rendered {
		return nil
	}
	on := present && v != "" && v != "false" && v != "0"
	return &on
}
