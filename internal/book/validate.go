package book

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindInteger
)

// schema lists the required book fields in the order errors are reported.
var schema = []struct {
	name string
	kind fieldKind
}{
	{"isbn", kindString},
	{"amazon_url", kindString},
	{"author", kindString},
	{"language", kindString},
	{"pages", kindInteger},
	{"publisher", kindString},
	{"title", kindString},
	{"year", kindInteger},
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func schemaIndex(field string) int {
	for i, f := range schema {
		if f.name == field {
			return i
		}
	}
	return len(schema)
}

// Validate checks a raw JSON payload against the book schema. Every field
// must be present with the declared JSON type; numeric strings are not
// coerced. Unknown fields are ignored.
func Validate(payload []byte) (Book, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil || raw == nil {
		return Book{}, &ValidationError{Fields: []FieldError{{
			Field:   "body",
			Message: "body must be a JSON object",
		}}}
	}

	var (
		b      Book
		errs   []FieldError
		failed = make(map[string]bool)
	)
	for _, f := range schema {
		value, ok := raw[f.name]
		if !ok {
			errs = append(errs, FieldError{Field: f.name, Message: fmt.Sprintf("%s is required", f.name)})
			failed[f.name] = true
			continue
		}
		switch f.kind {
		case kindString:
			s, ok := decodeString(value)
			if !ok {
				errs = append(errs, FieldError{Field: f.name, Message: fmt.Sprintf("%s must be a string", f.name)})
				failed[f.name] = true
				continue
			}
			b.setString(f.name, s)
		case kindInteger:
			n, ok := decodeInteger(value)
			if !ok {
				errs = append(errs, FieldError{Field: f.name, Message: fmt.Sprintf("%s must be an integer", f.name)})
				failed[f.name] = true
				continue
			}
			b.setInteger(f.name, n)
		}
	}

	errs = append(errs, structErrors(b, failed)...)
	sort.SliceStable(errs, func(i, j int) bool {
		return schemaIndex(errs[i].Field) < schemaIndex(errs[j].Field)
	})
	if len(errs) > 0 {
		return Book{}, &ValidationError{Fields: errs}
	}
	return b, nil
}

func structErrors(b Book, skip map[string]bool) []FieldError {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	var out []FieldError
	for _, fe := range verrs {
		field := fe.Field()
		if skip[field] {
			continue
		}
		var message string
		switch fe.Tag() {
		case "notblank":
			message = fmt.Sprintf("%s must not be blank", field)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		out = append(out, FieldError{Field: field, Message: message})
	}
	return out
}

func decodeString(value json.RawMessage) (string, bool) {
	if isNull(value) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeInteger accepts only JSON number literals without a fraction or
// exponent that fit the INTEGER column.
func decodeInteger(value json.RawMessage) (int, bool) {
	if isNull(value) {
		return 0, false
	}
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func (b *Book) setString(field, v string) {
	switch field {
	case "isbn":
		b.ISBN = v
	case "amazon_url":
		b.AmazonURL = v
	case "author":
		b.Author = v
	case "language":
		b.Language = v
	case "publisher":
		b.Publisher = v
	case "title":
		b.Title = v
	}
}

func (b *Book) setInteger(field string, v int) {
	switch field {
	case "pages":
		b.Pages = v
	case "year":
		b.Year = v
	}
}
