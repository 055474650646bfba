package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"modernband/internal/backend"
	"modernband/internal/booking"
	"modernband/internal/config"
	"modernband/internal/domain/models"
	"modernband/internal/http/handlers"
	"modernband/internal/services"
	"modernband/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

// fakeBackend plays the bookings/admin API.
type fakeBackend struct {
	mu        sync.Mutex
	bookings  []booking.Record
	posted    []map[string]any
	failBook  string
	employees []models.Employee
	lastAuth  string
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	mux.HandleFunc("POST /book", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failBook != "" {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": f.failBook})
			return
		}
		raw, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(raw, &payload)
		f.posted = append(f.posted, payload)

		var d booking.Draft
		_ = json.Unmarshal(raw, &d)
		rec := booking.Record{ID: "BK-100", Draft: d}
		f.bookings = append(f.bookings, rec)
		writeJSON(w, http.StatusCreated, map[string]any{"message": "Booking created", "booking": rec})
	})
	mux.HandleFunc("GET /booking", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id, phone := r.URL.Query().Get("booking_id"), r.URL.Query().Get("contact_number")
		for _, b := range f.bookings {
			if (id != "" && b.ID.String() == id) || (phone != "" && b.Phone == phone) {
				writeJSON(w, http.StatusOK, map[string]any{"booking": b})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Booking not found"})
	})
	mux.HandleFunc("GET /bookings", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"bookings": f.bookings})
	})
	mux.HandleFunc("DELETE /bookings/past", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok", "deleted_count": 2})
	})
	mux.HandleFunc("POST /signin", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"admin": map[string]any{
			"id": 1, "name": "Owner", "username": body["username"], "isAdmin": true, "token": "tok-123",
		}})
	})
	mux.HandleFunc("GET /employees", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastAuth = r.Header.Get("Authorization")
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"employees": f.employees})
	})
	mux.HandleFunc("GET /employees/{username}", func(w http.ResponseWriter, r *http.Request) {
		for _, e := range f.employees {
			if e.Username == r.PathValue("username") {
				writeJSON(w, http.StatusOK, e)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Employee not found"})
	})
	return mux
}

type testApp struct {
	router  *gin.Engine
	backend *fakeBackend
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	fb := &fakeBackend{
		bookings: []booking.Record{{
			ID: "BK-7",
			Draft: booking.Draft{
				Name: "Asha Verma", Email: "asha@example.com", Phone: "9123456780",
				PackageType: booking.PackageDholOnly, Date: "2025-07-10", Venue: "Ram Bagh", City: "Agra",
				NumberOfDhols: 4, Amount: 15000, AdvancePayment: 5000,
			},
		}},
		employees: []models.Employee{{
			Username: "suresh", Name: "Suresh", TotalAmountToBePaid: 10000,
			Payments: []models.Payment{{ID: "1", AmountPaid: 2500, Date: "2025-05-01"}},
		}},
	}
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, 5*time.Second)
	env := config.Env{
		APIURL:             srv.URL,
		WizardTTL:          time.Hour,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		WhatsAppNumber:     "919412308386",
	}
	now := func() time.Time { return testNow }
	h := handlers.New(handlers.Deps{
		Env:       env,
		Gateway:   client,
		Bookings:  client,
		Employees: client,
		Admins:    client,
		Backend:   client,
		Wizards:   services.NewMemoryWizardStore(time.Hour),
		Sessions:  session.NewJWTStore("test-secret", time.Hour, false),
		Now:       now,
	})
	r, err := NewRouter(env, h)
	require.NoError(t, err)
	return &testApp{router: r, backend: fb}
}

func (a *testApp) do(method, target string, body io.Reader, contentType string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) json(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return a.do(method, target, r, "application/json", cookies...)
}

func (a *testApp) form(target string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, target, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded", cookies...)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w := app.json(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = app.json(http.MethodGet, "/api/health/backend", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestWizardAPIFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.json(http.MethodPost, "/api/wizard?package=baraat", "")
	require.Equal(t, http.StatusCreated, w.Code)
	state := decode(t, w)["wizard"].(map[string]any)
	id := state["id"].(string)
	assert.Equal(t, "Baraat Band Package", state["draft"].(map[string]any)["packageType"])

	base := "/api/wizard/" + id
	w = app.json(http.MethodPatch, base, `{"name":"Jo","email":"x","phone":"12345"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.json(http.MethodPost, base+"/next", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")

	steps := []string{
		`{"name":"Rahul Sharma","email":"rahul@example.com","phone":"9876543210"}`,
		`{"date":"2025-11-20","venue":"Shanti Lawn","city":"Agra"}`,
		`{"bandTime":"7PM to 9PM","numberOfPeople":15,"numberOfLights":10,"ghodiForBaraat":true,"ghodaBaggi":2}`,
		`{"amount":30000,"advancePayment":9000}`,
	}
	for _, body := range steps {
		require.Equal(t, http.StatusOK, app.json(http.MethodPatch, base, body).Code)
		w = app.json(http.MethodPost, base+"/next", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	assert.Equal(t, true, decode(t, w)["wizard"].(map[string]any)["showConfirmation"])

	w = app.json(http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rec := decode(t, w)["wizard"].(map[string]any)["record"].(map[string]any)
	assert.Equal(t, "BK-100", rec["id"])

	require.Len(t, app.backend.posted, 1)
	posted := app.backend.posted[0]
	assert.Equal(t, float64(0), posted["ghodaBaggi"], "ghoda baggi is irrelevant once ghodi is chosen")
	assert.Equal(t, float64(15), posted["numberOfPeople"])

	w = app.json(http.MethodPost, base+"/submit", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWizardAPISubmitFailure(t *testing.T) {
	app := newTestApp(t)
	app.backend.failBook = "Database down"

	w := app.json(http.MethodPost, "/api/wizard", "")
	id := decode(t, w)["wizard"].(map[string]any)["id"].(string)
	base := "/api/wizard/" + id
	steps := []string{
		`{"name":"Rahul Sharma","email":"rahul@example.com","phone":"9876543210"}`,
		`{"packageType":"Reception Package","date":"2025-11-20","venue":"Shanti Lawn","city":"Agra"}`,
		`{}`,
		`{"amount":30000,"advancePayment":9000}`,
	}
	for _, body := range steps {
		app.json(http.MethodPatch, base, body)
		require.Equal(t, http.StatusOK, app.json(http.MethodPost, base+"/next", "").Code)
	}

	w = app.json(http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusBadGateway, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Database down", body["error"])
	wiz := body["state"].(map[string]any)["wizard"].(map[string]any)
	assert.Equal(t, "Database down", wiz["submitError"])
	assert.Equal(t, "Rahul Sharma", wiz["draft"].(map[string]any)["name"])

	assert.Equal(t, http.StatusNotFound, app.json(http.MethodGet, "/api/wizard/unknown", "").Code)
}

func TestBookingPageFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/booking?package=dhol", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "wizard_id" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Contains(t, w.Body.String(), "Personal Info")

	w = app.form("/booking", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Jo"}, "email": {"bad"}, "phone": {"1"}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = app.do(http.MethodGet, "/booking", nil, "", cookie)
	assert.Contains(t, w.Body.String(), "Invalid email address")

	app.form("/booking", url.Values{"step": {"1"}, "action": {"next"}, "name": {"Meena"}, "email": {"meena@example.com"}, "phone": {"9000000001"}}, cookie)
	w = app.do(http.MethodGet, "/booking", nil, "", cookie)
	assert.Contains(t, w.Body.String(), `name="venue"`)
	assert.Contains(t, w.Body.String(), `value="Dhol Only Package" selected`)

	app.form("/booking", url.Values{"step": {"2"}, "action": {"next"}, "packageType": {"Dhol Only Package"}, "date": {"2025-09-01"}, "venue": {"Ram Bagh"}, "city": {"Agra"}}, cookie)
	w = app.do(http.MethodGet, "/booking", nil, "", cookie)
	body := w.Body.String()
	assert.Contains(t, body, `name="numberOfDhols"`)
	assert.NotContains(t, body, `name="numberOfLights"`)

	app.form("/booking", url.Values{"step": {"3"}, "action": {"next"}, "bandTime": {"Full Time"}, "numberOfDhols": {"3"}}, cookie)
	app.form("/booking", url.Values{"step": {"4"}, "action": {"book"}, "amount": {"12000"}, "advancePayment": {"2000"}}, cookie)
	w = app.do(http.MethodGet, "/booking", nil, "", cookie)
	assert.Contains(t, w.Body.String(), "Confirm your booking")
	assert.Contains(t, w.Body.String(), "₹10,000")

	w = app.form("/booking", url.Values{"action": {"confirm"}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = app.do(http.MethodGet, "/booking", nil, "", cookie)
	assert.Contains(t, w.Body.String(), "Booking Confirmed!")
	assert.Contains(t, w.Body.String(), "BK-100")
}

func TestBookingPageExpiredCookie(t *testing.T) {
	app := newTestApp(t)
	w := app.form("/booking", url.Values{"action": {"next"}}, &http.Cookie{Name: "wizard_id", Value: "gone"})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/booking?notice=expired", w.Header().Get("Location"))
}

func TestLookupAndSlip(t *testing.T) {
	app := newTestApp(t)

	w := app.json(http.MethodGet, "/api/booking?identifier=9123456780", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "BK-7", body["booking"].(map[string]any)["id"])
	assert.Equal(t, float64(10000), body["summary"].(map[string]any)["remainingAmount"])

	assert.Equal(t, http.StatusNotFound, app.json(http.MethodGet, "/api/booking?identifier=BK-404", "").Code)
	assert.Equal(t, http.StatusBadRequest, app.json(http.MethodGet, "/api/booking?identifier=", "").Code)

	w = app.do(http.MethodGet, "/api/booking/slip?identifier=BK-7&download=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="booking-BK-7.pdf"`, w.Header().Get("Content-Disposition"))

	w = app.do(http.MethodGet, "/check-booking?identifier=BK-404", nil, "")
	assert.Contains(t, w.Body.String(), "Booking not found")
}

func TestAdminFlow(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusUnauthorized, app.json(http.MethodGet, "/admin/api/dashboard", "").Code)

	w := app.json(http.MethodPost, "/admin/api/login", `{"username":"owner","password":"wrong12"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["error"])

	w = app.json(http.MethodPost, "/admin/api/login", `{"username":"owner","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "tok-123")
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = app.json(http.MethodGet, "/admin/api/session", "", cookies...)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.json(http.MethodGet, "/admin/api/dashboard", "", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.Equal(t, float64(1), stats["totalBookings"])
	assert.Equal(t, float64(1), stats["totalEmployees"])
	assert.Equal(t, "Bearer tok-123", app.backend.lastAuth)

	w = app.json(http.MethodGet, "/admin/api/bookings?name=asha&active=1", "", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = app.json(http.MethodGet, "/admin/api/bookings?month=1", "", cookies...)
	assert.Equal(t, float64(0), decode(t, w)["count"])

	w = app.do(http.MethodGet, "/admin/api/bookings/report.pdf", nil, "", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	w = app.json(http.MethodDelete, "/admin/api/bookings/past", "", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["deleted_count"])

	w = app.json(http.MethodPost, "/admin/api/employees", `{"name":"Al","mobileNumber":"1","email":"x","address":"abc","totalAmountToBePaid":100,"totalAmountPaidInAdvance":200,"username":"al","password":"1","confirmPassword":"2"}`, cookies...)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	assert.Equal(t, "Advance payment cannot exceed total amount", errs["totalAmountPaidInAdvance"])

	w = app.json(http.MethodPost, "/admin/api/logout", "", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeSelfService(t *testing.T) {
	app := newTestApp(t)

	w := app.json(http.MethodGet, "/api/employee/suresh", "")
	require.Equal(t, http.StatusOK, w.Code)
	totals := decode(t, w)["totals"].(map[string]any)
	assert.Equal(t, float64(7500), totals["remaining"])

	assert.Equal(t, http.StatusNotFound, app.json(http.MethodGet, "/api/employee/nobody", "").Code)

	w = app.do(http.MethodGet, "/api/employee/suresh/statement.pdf", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `inline; filename="employee-suresh-details.pdf"`, w.Header().Get("Content-Disposition"))

	w = app.do(http.MethodGet, "/employee?username=suresh", nil, "")
	assert.Contains(t, w.Body.String(), "Payment History")
}

func TestPublicPagesAndForms(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/", "/about", "/packages", "/gallery?category=baraat", "/testimonials", "/contact", "/enquiry?package=djBand", "/check-booking", "/employee"} {
		w := app.do(http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := app.form("/contact", url.Values{"name": {"Alok"}, "email": {"alok@example.com"}, "phone": {"9876543210"}, "message": {"Hello"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "https://wa.me/919412308386?text="))

	w = app.form("/enquiry", url.Values{"venueAddress": {"A"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please select an event date")

	w = app.json(http.MethodGet, "/api/gallery?category=video", "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, it := range decode(t, w)["items"].([]any) {
		assert.Equal(t, "video", it.(map[string]any)["category"])
	}

	w = app.json(http.MethodGet, "/api/packages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["packages"], 5)

	assert.Equal(t, http.StatusNotFound, app.json(http.MethodGet, "/api/nope", "").Code)
	w = app.do(http.MethodGet, "/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
