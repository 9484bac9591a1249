package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// Validate is the shared validator instance; Translator renders its
	// errors as user-facing texts.
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	gradeLevelTag  = "gradelevel"
	gradeLevelText = "must be one of Grade 1 through Grade 6"

	subjectTag  = "subject"
	subjectText = "must be either History or Science"

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

func init() {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	Translator, _ = uni.GetTranslator("en")
	Validate = validator.New()
	InitValidators(Validate, Translator)
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(gradeLevelTag, gradeLevelValidation)
	RegisterCustomTranslation(validate, translator, gradeLevelTag, gradeLevelText)

	_ = validate.RegisterValidation(subjectTag, subjectValidation)
	RegisterCustomTranslation(validate, translator, subjectTag, subjectText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// gradeLevelValidation only allows platform grade levels.
func gradeLevelValidation(fl validator.FieldLevel) bool {
	return ValidGradeLevel(fl.Field().String())
}

// subjectValidation only allows platform subjects.
func subjectValidation(fl validator.FieldLevel) bool {
	return ValidSubject(fl.Field().String())
}
