package api

import (
	stdhttp "net/http"

	"modernband/internal/config"
	h "modernband/internal/http/handlers"
	"modernband/internal/http/middleware"
	"modernband/internal/utils"
	"modernband/web"

	"github.com/gin-gonic/gin"
)

func NewRouter(env config.Env, hd *h.Handler) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())
	r.NoRoute(hd.NotFound)

	// Public pages
	r.GET("/", hd.HomePage)
	r.GET("/about", hd.AboutPage)
	r.GET("/packages", hd.PackagesPage)
	r.GET("/gallery", hd.GalleryPage)
	r.GET("/testimonials", hd.TestimonialsPage)
	r.GET("/contact", hd.ContactPage)
	r.POST("/contact", hd.ContactSubmit)
	r.GET("/enquiry", hd.EnquiryPage)
	r.POST("/enquiry", hd.EnquirySubmit)
	r.GET("/booking", hd.BookingPage)
	r.POST("/booking", hd.BookingAction)
	r.GET("/check-booking", hd.CheckBookingPage)
	r.GET("/employee", hd.EmployeePage)

	api := r.Group("/api", middleware.CORS(env.CORSAllowedOrigins))
	{
		api.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
		api.GET("/health", hd.Health)
		api.GET("/health/backend", hd.BackendHealth)
		api.GET("/routes", h.Routes)

		api.GET("/packages", hd.PackagesMeta)
		api.GET("/gallery", hd.GalleryItems)

		// Booking wizard
		wizard := api.Group("/wizard")
		wizard.POST("", hd.CreateWizard)
		wizard.GET("/:id", hd.GetWizard)
		wizard.PATCH("/:id", hd.PatchWizard)
		wizard.DELETE("/:id", hd.DiscardWizard)
		wizard.POST("/:id/next", hd.NextWizardStep)
		wizard.POST("/:id/back", hd.PrevWizardStep)
		wizard.POST("/:id/submit", hd.SubmitWizard)

		// Booking lookup
		api.GET("/booking", hd.LookupBooking)
		api.GET("/booking/slip", hd.BookingSlipPDF)

		// Employee self-service
		api.GET("/employee/:username", hd.EmployeeDetails)
		api.GET("/employee/:username/statement.pdf", hd.EmployeeStatementPDF)
	}

	admin := r.Group("/admin/api", middleware.CORS(env.CORSAllowedOrigins))
	{
		admin.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
		admin.POST("/login", hd.AdminLogin)
		admin.POST("/logout", hd.AdminLogout)
		admin.GET("/session", hd.AdminSession)

		secured := admin.Group("", middleware.RequireAdmin(hd.Sessions))
		secured.GET("/dashboard", hd.Dashboard)

		bookings := secured.Group("/bookings")
		bookings.GET("", hd.ListBookings)
		bookings.GET("/report.pdf", hd.BookingsReportPDF)
		bookings.DELETE("/past", hd.DeletePastBookings)
		bookings.DELETE("/:id", hd.DeleteBooking)

		employees := secured.Group("/employees")
		employees.GET("", hd.ListEmployees)
		employees.POST("", hd.CreateEmployee)
		employees.GET("/:username", hd.GetEmployee)
		employees.DELETE("/:username", hd.DeleteEmployee)
		employees.POST("/:username/payments", hd.AddEmployeePayment)
		employees.DELETE("/:username/payments/:paymentId", hd.DeleteEmployeePayment)

		secured.POST("/admins", hd.CreateAdmin)
		secured.POST("/gallery", hd.UploadGalleryItem)
	}

	h.SetRouter(r)
	return r, nil
}
