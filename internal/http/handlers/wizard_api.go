package handlers

import (
	"net/http"

	"modernband/internal/booking"
	"modernband/internal/domain"

	"github.com/gin-gonic/gin"
)

type wizardResponse struct {
	Wizard         *booking.Wizard  `json:"wizard"`
	StepTitle      string           `json:"stepTitle"`
	StepFields     booking.FieldSet `json:"stepFields"`
	RelevantFields booking.FieldSet `json:"relevantFields"`
	Summary        booking.Summary  `json:"summary"`
	Today          string           `json:"today"`
}

func (h *Handler) wizardJSON(w *booking.Wizard) wizardResponse {
	return wizardResponse{
		Wizard:         w,
		StepTitle:      w.Step.Title(),
		StepFields:     booking.FieldsForStep(w.Step, w.Draft),
		RelevantFields: booking.RelevantFields(w.Draft.PackageType, w.Draft.Toggles()),
		Summary:        booking.Summarize(w.Draft),
		Today:          h.Validator.Today(),
	}
}

// POST /api/wizard
func (h *Handler) CreateWizard(c *gin.Context) {
	svc := h.wizardService(c)
	w := svc.Start()
	if pkg, ok := packageFromQuery(c); ok {
		if updated, err := svc.Preselect(w.ID, pkg); err == nil {
			w = updated
		}
	}
	c.JSON(http.StatusCreated, h.wizardJSON(w))
}

// GET /api/wizard/:id
func (h *Handler) GetWizard(c *gin.Context) {
	w, err := h.wizardService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.wizardJSON(w))
}

// PATCH /api/wizard/:id merges the fields editable on the current step.
func (h *Handler) PatchWizard(c *gin.Context) {
	var p booking.Patch
	if !BindJSONOrError(c, &p) {
		return
	}
	w, err := h.wizardService(c).Update(c.Param("id"), p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.wizardJSON(w))
}

// POST /api/wizard/:id/next answers 422 with field errors when the step does not validate.
func (h *Handler) NextWizardStep(c *gin.Context) {
	w, res, err := h.wizardService(c).Next(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !res.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Please correct the highlighted fields",
			"errors": res.Errors,
			"state":  h.wizardJSON(w),
		})
		return
	}
	c.JSON(http.StatusOK, h.wizardJSON(w))
}

// POST /api/wizard/:id/back
func (h *Handler) PrevWizardStep(c *gin.Context) {
	w, err := h.wizardService(c).Back(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.wizardJSON(w))
}

// POST /api/wizard/:id/submit sends the confirmed booking to the backend.
func (h *Handler) SubmitWizard(c *gin.Context) {
	w, err := h.wizardService(c).Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if up, ok := domain.AsUpstream(err); ok && w != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": up.Error(),
				"state": h.wizardJSON(w),
			})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.wizardJSON(w))
}

// DELETE /api/wizard/:id
func (h *Handler) DiscardWizard(c *gin.Context) {
	if err := h.wizardService(c).Discard(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type packageMeta struct {
	Type  booking.PackageType `json:"type"`
	Label string              `json:"label"`
	Param string              `json:"param,omitempty"`
}

// GET /api/packages
func (h *Handler) PackagesMeta(c *gin.Context) {
	params := map[booking.PackageType]string{booking.PackageDholOnly: "dhol"}
	for _, p := range sitePackages() {
		params[p.Type] = p.Param
	}
	out := make([]packageMeta, 0, len(booking.PackageTypes))
	for _, p := range booking.PackageTypes {
		out = append(out, packageMeta{Type: p, Label: p.Label(), Param: params[p]})
	}
	c.JSON(http.StatusOK, gin.H{
		"packages":  out,
		"timeSlots": booking.TimeSlots,
		"steps":     stepList(),
	})
}

func stepList() []gin.H {
	out := make([]gin.H, 0, len(booking.FormSteps))
	for _, s := range booking.FormSteps {
		out = append(out, gin.H{"step": s, "title": s.Title()})
	}
	return out
}
