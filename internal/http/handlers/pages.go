package handlers

import (
	"net/http"
	"strings"

	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/services"
	"modernband/internal/site"

	"github.com/gin-gonic/gin"
)

// page builds the data every template shares, merged with extra.
func (h *Handler) page(c *gin.Context, title, active string, extra gin.H) gin.H {
	data := gin.H{
		"Title":        title,
		"Active":       active,
		"Year":         h.Now().Year(),
		"WhatsAppLink": h.enquiryService(c).GreetingLink(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func sitePackages() []site.Package { return site.Packages }

func packageFromQuery(c *gin.Context) (booking.PackageType, bool) {
	param := strings.TrimSpace(c.Query("package"))
	if param == "" {
		return "", false
	}
	if pkg, ok := site.PackageFromParam(param); ok {
		return pkg, true
	}
	pkg := booking.PackageType(param)
	return pkg, pkg.Valid()
}

func (h *Handler) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.page(c, "Modern Band", "home", gin.H{
		"Packages":     site.Packages,
		"Testimonials": site.Testimonials[:3],
		"Gallery":      services.FilterGallery(site.Gallery, "all")[:6],
	}))
}

func (h *Handler) AboutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.page(c, "About Us", "about", nil))
}

func (h *Handler) PackagesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "packages.html", h.page(c, "Our Packages", "packages", gin.H{
		"Packages": site.Packages,
		"FAQs":     site.FAQs,
	}))
}

func (h *Handler) GalleryPage(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	c.HTML(http.StatusOK, "gallery.html", h.page(c, "Gallery", "gallery", gin.H{
		"Items":      h.galleryService(c).List(c.Request.Context(), category),
		"Categories": site.GalleryCategories,
		"Category":   category,
	}))
}

func (h *Handler) TestimonialsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "testimonials.html", h.page(c, "Testimonials", "testimonials", gin.H{
		"Testimonials": site.Testimonials,
	}))
}

func (h *Handler) ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", h.page(c, "Contact Us", "contact", gin.H{
		"Form": services.ContactMessage{},
	}))
}

// POST /contact redirects to WhatsApp with the message prefilled.
func (h *Handler) ContactSubmit(c *gin.Context) {
	var m services.ContactMessage
	_ = c.ShouldBind(&m)
	link, err := h.enquiryService(c).ContactLink(m)
	if err != nil {
		h.renderFormErrors(c, "contact.html", "Contact Us", "contact", m, err)
		return
	}
	c.Redirect(http.StatusSeeOther, link)
}

func (h *Handler) EnquiryPage(c *gin.Context) {
	form := services.Enquiry{PackageType: services.EnquiryPackageFromParam(c.Query("package"))}
	c.HTML(http.StatusOK, "enquiry.html", h.page(c, "Price Enquiry", "enquiry", gin.H{
		"Form":     form,
		"Packages": services.EnquiryPackages,
		"Today":    h.Validator.Today(),
	}))
}

// POST /enquiry redirects to WhatsApp with the enquiry prefilled.
func (h *Handler) EnquirySubmit(c *gin.Context) {
	var e services.Enquiry
	_ = c.ShouldBind(&e)
	link, err := h.enquiryService(c).EnquiryLink(e)
	if err != nil {
		h.renderFormErrors(c, "enquiry.html", "Price Enquiry", "enquiry", e, err)
		return
	}
	c.Redirect(http.StatusSeeOther, link)
}

func (h *Handler) renderFormErrors(c *gin.Context, tmpl, title, active string, form any, err error) {
	fields, ok := domain.AsFieldErrors(err)
	if !ok {
		RespondDomainError(c, err)
		return
	}
	c.HTML(http.StatusUnprocessableEntity, tmpl, h.page(c, title, active, gin.H{
		"Form":     form,
		"Errors":   fields,
		"Packages": services.EnquiryPackages,
		"Today":    h.Validator.Today(),
	}))
}

// NotFound serves HTML to browsers and JSON to API callers.
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		return
	}
	c.HTML(http.StatusNotFound, "not_found.html", h.page(c, "Page Not Found", "", nil))
}
