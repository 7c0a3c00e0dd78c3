// Package validate wraps a singleton go-playground validator with English
// translations. Struct tags use the json name of a field in messages
package validate

import (
	"reflect"
	"strings"
	"sync"

	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/logger"
	pstrings "libfj/internal/platform/strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Svc holds the validator and its translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

// Violation is one translated validation failure
type Violation struct {
	Field   string
	Message string
}

var (
	vOnce sync.Once
	vSvc  *Svc
)

// Get returns the validator singleton, initializing on first use
func Get() *Svc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		_ = v.RegisterValidation("comma_ints", func(fl validator.FieldLevel) bool {
			return pstrings.IsIntCSV(fl.Field().String())
		})
		registerShort(v, trans, "comma_ints", "{0} must be a comma-separated list of integers")

		vSvc = &Svc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Struct validates v and maps the first failure to a perr validation error with its field set
func Struct(v any) error {
	vs := Violations(v)
	if len(vs) == 0 {
		return nil
	}
	return perr.WithField(perr.New(perr.ErrorCodeValidation, vs[0].Message), vs[0].Field)
}

// Violations validates v and returns every translated failure; nil means valid
func Violations(v any) []Violation {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		logger.Get().Error().Err(err).Msg("validator internal error")
		return []Violation{{Message: err.Error()}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Field: fe.Field(), Message: fe.Translate(Get().Translator)})
	}
	return out
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
