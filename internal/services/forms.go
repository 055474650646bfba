package services

import (
	"errors"
	"reflect"
	"strings"

	"modernband/internal/domain"
	"modernband/internal/utils"

	"github.com/go-playground/validator/v10"
)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return utils.IsTenDigitPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseISODate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("enquirypackage", func(fl validator.FieldLevel) bool {
		return EnquiryPackage(fl.Field().String()).Valid()
	})
	return v
}

// formMessages is keyed "field.tag", falling back to "field".
var formMessages = map[string]string{
	"name":                              "Name must be at least 3 characters",
	"email":                             "Please enter a valid email address",
	"mobileNumber":                      "Mobile number must be exactly 10 digits",
	"address":                           "Please enter a valid address",
	"totalAmountToBePaid":               "Amount must be 0 or greater",
	"totalAmountPaidInAdvance":          "Amount must be 0 or greater",
	"totalAmountPaidInAdvance.ltefield": "Advance payment cannot exceed total amount",
	"username":                          "Username must be at least 3 characters",
	"password":                          "Password must be at least 6 characters",
	"confirmPassword":                   "Passwords do not match",
	"amountPaid":                        "Amount must be greater than 0",
	"date.required":                     "Date is required",
	"date":                              "Please enter a valid date",
	"eventDate.required":                "Please select an event date",
	"eventDate":                         "Please enter a valid event date",
	"venueAddress":                      "Venue address is required",
	"packageType":                       "Please select a valid package",
	"phone":                             "Phone number must be exactly 10 digits",
	"message":                           "Please enter your message",
	"numberOfLights":                    "Must be 0 or greater",
	"ghodaBaggi":                        "Must be 0 or greater",
	"numberOfDhols":                     "Must be 0 or greater",
	"fireworksAmount":                   "Must be 0 or greater",
}

// validateForm returns domain.FieldErrors keyed by JSON field name, or nil.
func validateForm(req any) error {
	err := formValidator.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ValidationError{Msg: err.Error(), Err: err}
	}
	out := domain.FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := formMessages[field+"."+fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		if msg, ok := formMessages[field]; ok {
			out[field] = msg
			continue
		}
		out[field] = "Invalid value"
	}
	return out
}
