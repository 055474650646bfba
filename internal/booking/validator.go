package booking

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"modernband/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of validating a field subset.
type Result struct {
	Valid  bool               `json:"valid"`
	Errors map[FieldID]string `json:"errors,omitempty"`
}

// Validator checks a draft against a subset of its fields. It is safe for concurrent use.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// goFieldNames maps wire names to struct field names, which StructPartial expects.
var goFieldNames = func() map[FieldID]string {
	out := map[FieldID]string{}
	t := reflect.TypeOf(Draft{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		out[FieldID(jsonName(f))] = f.Name
	}
	return out
}()

// NewValidator builds a validator; now decides what "today" is and defaults to time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: now}
	val.v.RegisterTagNameFunc(jsonName)
	_ = val.v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return utils.IsTenDigitPhone(fl.Field().String())
	})
	_ = val.v.RegisterValidation("package", func(fl validator.FieldLevel) bool {
		return PackageType(fl.Field().String()).Valid()
	})
	_ = val.v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return TimeSlot(fl.Field().String()).Valid()
	})
	_ = val.v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseISODate(fl.Field().String())
		return err == nil
	})
	_ = val.v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		d, err := utils.ParseISODate(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.Before(utils.StartOfDay(val.now()))
	})
	return val
}

// Today is the validator's notion of the current date, as YYYY-MM-DD.
func (val *Validator) Today() string {
	return utils.FormatDate(val.now())
}

// Validate checks only the fields in subset. It never mutates d.
func (val *Validator) Validate(d Draft, subset FieldSet) Result {
	if len(subset) == 0 {
		return Result{Valid: true}
	}
	names := make([]string, 0, len(subset))
	for _, f := range subset {
		if name, ok := goFieldNames[f]; ok {
			names = append(names, name)
		}
	}

	err := val.v.StructPartial(d, names...)
	if err == nil {
		return Result{Valid: true}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Valid: false, Errors: map[FieldID]string{"_": err.Error()}}
	}
	out := make(map[FieldID]string, len(verrs))
	for _, fe := range verrs {
		f := FieldID(fe.Field())
		if _, seen := out[f]; !seen {
			out[f] = messageFor(f, fe.Tag())
		}
	}
	return Result{Valid: false, Errors: out}
}

func messageFor(f FieldID, tag string) string {
	switch f {
	case FieldName:
		return "Name must be at least 2 characters"
	case FieldEmail:
		return "Invalid email address"
	case FieldPhone, FieldAdditionalPhone:
		return "Invalid phone number"
	case FieldPackageType:
		return "Please select a package"
	case FieldDate:
		if tag == "notpast" {
			return "Event date cannot be in the past"
		}
		return "Please select a date"
	case FieldVenue:
		return "Venue is required"
	case FieldCity:
		return "City is required"
	case FieldBandTime:
		return "Invalid time slot"
	case FieldCustomTimeSlot:
		return "Please describe the custom time slot"
	}
	switch tag {
	case "gte":
		return "Must be 0 or greater"
	case "lte":
		return "Amount is too large"
	}
	return "Invalid value"
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
