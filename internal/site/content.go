// Package site holds the static copy rendered by the public pages.
package site

import "modernband/internal/booking"

type Package struct {
	Type        booking.PackageType
	Param       string
	Title       string
	Description string
	Image       string
	Features    []string
}

var Packages = []Package{
	{
		Type:        booking.PackageBaraatBand,
		Param:       "baraat",
		Title:       "Baraat Band Package",
		Description: "Make a grand entrance with our traditional baraat band that brings energy and excitement to your wedding procession.",
		Image:       "/static/images/package_image1.png",
		Features: []string{
			"2-hour baraat performance",
			"30+ people including 16 musicians",
			"8+ Modern Pillar lights",
			"Decorated Royal Baggi or Ghodi",
			"Fireworks, Flower Canon, and more",
			"Mix of Bollywood, Punjabi, and classical music",
		},
	},
	{
		Type:        booking.PackageDJBand,
		Param:       "djBand",
		Title:       "DJ Band Package",
		Description: "A grand wedding procession with a decorated DJ setup, dazzling lights, and electrifying music beats to set the celebration in motion",
		Image:       "/static/images/package_image2.png",
		Features: []string{
			"2-hour live DJ performance",
			"8+ Modern Pillar lights",
			"Decorated Royal Baggi or Ghodi",
			"Fireworks, Flower Canon, and more",
			"Mix of Bollywood, Punjabi, and classical music",
			"Professional sound system included",
			"Custom song requests welcomed",
		},
	},
	{
		Type:        booking.PackageReception,
		Param:       "reception",
		Title:       "Haldi / Mehendi / Sangeet / Reception Package",
		Description: "Celebrate every shade of your wedding, from the vibrant Haldi to the dazzling Reception, with soulful melodies, festive rhythms, and unforgettable musical vibes",
		Image:       "/static/images/package_image3.png",
		Features: []string{
			"4+ hours of music throughout the day",
			"Trained DJ Artists",
			"Up to 10 musicians if needed",
			"Complete sound system for all venues",
		},
	},
	{
		Type:        booking.PackageFullWedding,
		Param:       "fullWedding",
		Title:       "Full Wedding Package",
		Description: "Comprehensive music and entertainment for all your wedding events from morning to evening.",
		Image:       "/static/images/package_image4.png",
		Features: []string{
			"8+ hours of music throughout the wedding",
			"Baraat, Haldi, Mehendi, and Reception coverage",
			"Complete sound system for all venues",
			"Mix of Bollywood, Punjabi, and classical music",
			"Professional sound system included",
			"15% discount compared to booking separately",
		},
	},
}

// PackageFromParam resolves the ?package= shortcut used by "Book This Package" links.
func PackageFromParam(param string) (booking.PackageType, bool) {
	for _, p := range Packages {
		if p.Param == param {
			return p.Type, true
		}
	}
	if param == "dhol" {
		return booking.PackageDholOnly, true
	}
	return "", false
}

type FAQ struct {
	Question string
	Answer   string
}

var FAQs = []FAQ{
	{"How far in advance should I book your band?", "We recommend booking at least 3-4 months in advance, especially for peak wedding season (October-February). For popular dates, even earlier is better."},
	{"Do you travel to different cities?", "Yes, we perform across major cities in India. Travel and accommodation costs will be additional for locations outside Mainpuri."},
	{"Can we request specific songs?", "Absolutely! We welcome song requests and will do our best to accommodate your favorites. Please provide your song list at least 2 weeks before the event."},
	{"What is your payment policy?", "We require a 30% deposit to secure your date, with the balance due one week before the event. We accept bank transfers and online payments."},
}

type Testimonial struct {
	Name     string
	Location string
	Date     string
	Text     string
	Rating   int
}

var Testimonials = []Testimonial{
	{"Priya & Arjun", "Delhi", "December 2022", "Modern Band made our wedding day truly special. The baraat procession was filled with such energy and had everyone dancing. They were professional, punctual, and exceeded our expectations!", 5},
	{"Vikram & Neha", "Mainpuri", "February 2023", "We booked the full-day package and it was worth every rupee. From the traditional morning ceremonies to the reception, the band created the perfect atmosphere. Our guests are still talking about it!", 5},
	{"Meera & Raj", "Agra", "November 2022", "Modern Band traveled to our venue in Agra and made our sangeet night magical. The singers were exceptional and they accommodated all our song requests. Highly recommended!", 5},
	{"Sunita & Karan", "Kanpur", "March 2023", "From our first meeting to the wedding day, Arvindra and his team were professional and attentive. The music selection was perfect and they adapted well to our schedule changes on the day.", 5},
	{"Amit & Divya", "Lucknow", "January 2023", "If you want authentic UP style wedding music with modern touches, look no further! Modern Band brought so much life to our baraat and reception. They are true masters of their craft.", 5},
	{"Ananya & Rohan", "Mainpuri", "April 2023", "As a local Mainpuri couple, we knew Modern Band's reputation, but they still surprised us with their creativity and energy. The dhol players were a highlight - everybody loved them!", 5},
}
