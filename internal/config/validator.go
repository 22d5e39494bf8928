package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("header_names", hasValidHeaderNames); err != nil {
		return nil, nil, fmt.Errorf("failed to register header_names validation: %w", err)
	}
	if err := validate.RegisterTranslation("header_names", trans, func(ut ut.Translator) error {
		return ut.Add("header_names", "{0} must only contain non-empty header names without spaces or colons", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("header_names", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register header_names translation: %w", err)
	}

	return validate, trans, nil
}

func hasValidHeaderNames(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Map {
		return false
	}
	for _, key := range field.MapKeys() {
		name := key.String()
		if name == "" || strings.ContainsAny(name, " \t:") {
			return false
		}
	}
	return true
}
