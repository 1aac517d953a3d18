// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// validate.go wires go-playground/validator for form input. Field errors
// are keyed by the form field name so the admin UI can highlight inputs.
package actions

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// placeholderPrefix marks generated placeholder images, accepted as a
// product image URL alongside regular absolute URLs.
const placeholderPrefix = "https://placehold.co/"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for a blank tag or nil func.
	_ = v.RegisterValidation("imageurl", validImageURL)
	_ = v.RegisterValidation("mediasrc", validMediaSrc)
	return v
}

// isAbsoluteURL reports whether s is a well-formed http(s) URL with a host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validImageURL accepts absolute http(s) URLs and placeholder-service URLs.
func validImageURL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.HasPrefix(s, placeholderPrefix) {
		return true
	}
	return isAbsoluteURL(s)
}

// validMediaSrc accepts absolute http(s) URLs and site-relative paths.
// Object-storage URLs are absolute, so they need no special case.
func validMediaSrc(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return true
	}
	return isAbsoluteURL(s)
}

// checkInput validates a parsed input struct. Returns nil when valid,
// otherwise a form-field-keyed map of human-readable messages.
func checkInput(in any) map[string][]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors here mean a broken input struct, which is
		// a programming error; report it as a single catch-all.
		return map[string][]string{"_": {genericError}}
	}

	fieldErrors := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fieldMessage(fe))
	}
	return fieldErrors
}

// fieldMessage translates a validator failure into a message fit for the
// submitting form.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "required_without":
		return "Provide an image or a video."
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s.", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "gt":
		return "Must be a positive number."
	case "email":
		return "Must be a valid email address."
	case "imageurl":
		return "Must be a valid image URL."
	case "mediasrc":
		return "Must be an absolute URL or a site-relative path."
	default:
		return "Invalid value."
	}
}

// formValue returns the trimmed first value for key.
func formValue(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

// formList normalizes a field that may arrive as a single value or as
// repeated values into a trimmed list without empties.
func formList(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		if s := strings.TrimSpace(raw); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitTags turns a comma-separated tag string into a cleaned list:
// entries are trimmed and empties dropped.
func splitTags(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// parsePrice parses a form price. Malformed input yields zero, which the
// positive-number validation then rejects.
func parsePrice(s string) float64 {
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return p
}
