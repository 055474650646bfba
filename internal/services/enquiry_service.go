package services

import (
	"fmt"
	"net/url"
	"strings"

	"modernband/internal/utils"
)

// EnquiryPackage is the coarser package list used by the price-enquiry form.
type EnquiryPackage string

const (
	EnquiryNormalBand   EnquiryPackage = "Normal Band"
	EnquiryDJBand       EnquiryPackage = "DJ Band"
	EnquiryDhol         EnquiryPackage = "Dhol"
	EnquiryWeddingEvent EnquiryPackage = "Wedding Event"
	EnquiryFullWedding  EnquiryPackage = "Full Wedding"
)

var EnquiryPackages = []EnquiryPackage{EnquiryNormalBand, EnquiryDJBand, EnquiryDhol, EnquiryWeddingEvent, EnquiryFullWedding}

// EnquiryPackageFromParam maps the ?package= links on the packages page.
func EnquiryPackageFromParam(param string) EnquiryPackage {
	switch param {
	case "baraat":
		return EnquiryNormalBand
	case "djBand":
		return EnquiryDJBand
	case "reception":
		return EnquiryWeddingEvent
	case "fullWedding":
		return EnquiryFullWedding
	case "dhol":
		return EnquiryDhol
	}
	return ""
}

func (p EnquiryPackage) Valid() bool {
	for _, k := range EnquiryPackages {
		if p == k {
			return true
		}
	}
	return false
}

type Enquiry struct {
	EventDate              string         `json:"eventDate" form:"eventDate" validate:"required,isodate"`
	VenueAddress           string         `json:"venueAddress" form:"venueAddress" validate:"min=2"`
	PackageType            EnquiryPackage `json:"packageType" form:"packageType" validate:"omitempty,enquirypackage"`
	TimingOption           string         `json:"timingOption" form:"timingOption"`
	CustomTiming           string         `json:"customTiming" form:"customTiming"`
	NumberOfLights         int            `json:"numberOfLights" form:"numberOfLights" validate:"gte=0"`
	GhodaBaggi             int            `json:"ghodaBaggi" form:"ghodaBaggi" validate:"gte=0"`
	GhodiForBaraat         bool           `json:"ghodiForBaraat" form:"ghodiForBaraat"`
	Fireworks              bool           `json:"fireworks" form:"fireworks"`
	FireworksAmount        int64          `json:"fireworksAmount" form:"fireworksAmount" validate:"gte=0"`
	Doli                   bool           `json:"doli" form:"doli"`
	FlowerCanon            bool           `json:"flowerCanon" form:"flowerCanon"`
	NumberOfDhols          int            `json:"numberOfDhols" form:"numberOfDhols" validate:"gte=0"`
	AdditionalRequirements string         `json:"additionalRequirements" form:"additionalRequirements"`
}

// Message renders the enquiry as WhatsApp markdown.
func (e Enquiry) Message() string {
	var b strings.Builder
	b.WriteString("*New Price Enquiry*\n\n")
	date := "Not specified"
	if strings.TrimSpace(e.EventDate) != "" {
		date = utils.ShortDate(e.EventDate)
	}
	fmt.Fprintf(&b, "*Event Date:* %s\n", date)
	fmt.Fprintf(&b, "*Venue Address:* %s\n", strings.TrimSpace(e.VenueAddress))
	fmt.Fprintf(&b, "*Package Type:* %s\n", orDefault(string(e.PackageType), "Not specified"))

	if e.PackageType == EnquiryNormalBand || e.PackageType == EnquiryDJBand {
		timing := e.TimingOption
		if timing == "Custom" {
			timing = e.CustomTiming
		}
		fmt.Fprintf(&b, "*Timing Option:* %s\n", orDefault(timing, "Not specified"))
		fmt.Fprintf(&b, "*Number of Lights:* %d\n", e.NumberOfLights)
		if e.GhodiForBaraat {
			b.WriteString("*Ghodi for Baraat:* Yes\n")
		} else {
			fmt.Fprintf(&b, "*Ghoda Baggi:* %d\n", e.GhodaBaggi)
		}
	}
	if e.PackageType == EnquiryDhol {
		fmt.Fprintf(&b, "*Number of Dhols:* %d\n", e.NumberOfDhols)
	}

	if e.Fireworks {
		b.WriteString("*Fireworks:* Yes\n")
		fmt.Fprintf(&b, "*Fireworks Amount:* %d\n", e.FireworksAmount)
	}
	if e.Doli {
		b.WriteString("*Doli:* Yes\n")
	}
	if e.FlowerCanon {
		b.WriteString("*Flower Canon:* Yes\n")
	}
	if req := strings.TrimSpace(e.AdditionalRequirements); req != "" {
		fmt.Fprintf(&b, "\n*Additional Requirements:*\n%s\n", req)
	}
	return b.String()
}

type ContactMessage struct {
	Name      string `json:"name" form:"name" validate:"min=3"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone" validate:"phone"`
	EventType string `json:"event_type" form:"event_type"`
	Message   string `json:"message" form:"message" validate:"min=1"`
}

func (m ContactMessage) Text() string {
	var b strings.Builder
	b.WriteString("*New Contact Message*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", strings.TrimSpace(m.Name))
	fmt.Fprintf(&b, "*Email:* %s\n", strings.TrimSpace(m.Email))
	fmt.Fprintf(&b, "*Phone:* %s\n", strings.TrimSpace(m.Phone))
	if et := strings.TrimSpace(m.EventType); et != "" {
		fmt.Fprintf(&b, "*Event Type:* %s\n", et)
	}
	fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(m.Message))
	return b.String()
}

// EnquiryService turns enquiry and contact forms into wa.me links.
type EnquiryService struct {
	WhatsAppNumber string
	RequestID      string
}

func (s EnquiryService) EnquiryLink(e Enquiry) (string, error) {
	if err := validateForm(e); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "enquiry", "price_enquiry", "package="+string(e.PackageType))
	return WhatsAppURL(s.WhatsAppNumber, e.Message()), nil
}

func (s EnquiryService) ContactLink(m ContactMessage) (string, error) {
	if err := validateForm(m); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "enquiry", "contact", "")
	return WhatsAppURL(s.WhatsAppNumber, m.Text()), nil
}

// GreetingLink is the plain "chat with us" link.
func (s EnquiryService) GreetingLink() string {
	return WhatsAppURL(s.WhatsAppNumber, "Hello Modern Band, I would like to inquire about your services.")
}

// WhatsAppURL builds https://wa.me/<number>?text=<message> with spaces as %20.
func WhatsAppURL(number, message string) string {
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
