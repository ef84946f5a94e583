package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

var api = sonic.ConfigStd

// Input is a request body shape for model M. Decode fills its pointer fields,
// Apply copies the fields present in the body onto m and returns their columns.
type Input[M any] interface {
	Sanitize()
	Apply(m *M, present Fields) []string
}

// Fields is the set of JSON keys accepted from a request body.
type Fields map[string]struct{}

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// ValidationError carries the message for the first violated constraint.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type fieldSpec struct {
	index      int
	name       string
	kind       reflect.Kind
	elem       reflect.Type
	required   bool
	nullable   bool
	allowEmpty bool // omitempty: "" is a legal value
	tags       string
	dive       string
}

type Validator struct {
	v     *validator.Validate
	mu    sync.RWMutex
	specs map[reflect.Type][]fieldSpec
}

func New() *Validator {
	return &Validator{
		v:     validator.New(),
		specs: make(map[reflect.Type][]fieldSpec),
	}
}

// Decode parses body into in (a pointer to a struct of pointer fields) and
// checks it against the struct's validate tags. Only the first violation is
// reported.
func (val *Validator) Decode(body []byte, in interface{ Sanitize() }) (Fields, error) {
	var raw map[string]json.RawMessage
	if err := api.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, invalid(`"value" must be of type object`)
	}

	rv := reflect.ValueOf(in).Elem()
	specs := val.specsFor(rv.Type())

	present := Fields{}
	for _, fs := range specs {
		data, ok := raw[fs.name]
		if !ok {
			continue
		}
		if isNull(data) {
			if fs.nullable {
				present[fs.name] = struct{}{}
			}
			continue
		}
		if err := decodeField(rv.Field(fs.index), fs, data); err != nil {
			return nil, err
		}
		present[fs.name] = struct{}{}
	}

	in.Sanitize()

	for _, fs := range specs {
		if err := val.check(rv.Field(fs.index), fs, present.Has(fs.name)); err != nil {
			return nil, err
		}
	}

	var unknown []string
	for key := range raw {
		if !hasSpec(specs, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, invalid(`"%s" is not allowed`, unknown[0])
	}
	return present, nil
}

func (val *Validator) specsFor(t reflect.Type) []fieldSpec {
	val.mu.RLock()
	specs, ok := val.specs[t]
	val.mu.RUnlock()
	if ok {
		return specs
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		fs := fieldSpec{index: i, name: name, kind: ft.Kind(), elem: ft}
		for _, opt := range strings.Split(f.Tag.Get("schema"), ",") {
			if opt == "nullable" {
				fs.nullable = true
			}
		}
		tags, dive, _ := strings.Cut(f.Tag.Get("validate"), "dive")
		fs.dive = strings.Trim(dive, ",")
		var rest []string
		for _, tag := range strings.Split(tags, ",") {
			switch tag {
			case "":
			case "required":
				fs.required = true
			case "omitempty":
				fs.allowEmpty = true
				rest = append(rest, tag)
			default:
				rest = append(rest, tag)
			}
		}
		fs.tags = strings.Join(rest, ",")
		specs = append(specs, fs)
	}

	val.mu.Lock()
	val.specs[t] = specs
	val.mu.Unlock()
	return specs
}

func (val *Validator) check(field reflect.Value, fs fieldSpec, present bool) error {
	if !present || field.IsNil() {
		if fs.required {
			return invalid(`"%s" is required`, fs.name)
		}
		return nil
	}
	value := field.Elem().Interface()
	if s, ok := value.(string); ok && s == "" && !fs.allowEmpty {
		return invalid(`"%s" is not allowed to be empty`, fs.name)
	}
	if fs.tags != "" {
		if err := val.v.Var(value, fs.tags); err != nil {
			return message(fs.name, err)
		}
	}
	if fs.dive != "" && fs.kind == reflect.Slice {
		items := field.Elem()
		for i := 0; i < items.Len(); i++ {
			if err := val.v.Var(items.Index(i).Interface(), fs.dive); err != nil {
				return message(fmt.Sprintf("%s[%d]", fs.name, i), err)
			}
		}
	}
	return nil
}

func message(name string, err error) error {
	var errs validator.ValidationErrors
	if !asValidationErrors(err, &errs) || len(errs) == 0 {
		return invalid(`"%s" %s`, name, err.Error())
	}
	fe := errs[0]
	numeric := fe.Kind() != reflect.String
	switch fe.Tag() {
	case "min", "gte":
		if numeric {
			return invalid(`"%s" must be greater than or equal to %s`, name, fe.Param())
		}
		return invalid(`"%s" length must be at least %s characters long`, name, fe.Param())
	case "max", "lte":
		if numeric {
			return invalid(`"%s" must be less than or equal to %s`, name, fe.Param())
		}
		return invalid(`"%s" length must be less than or equal to %s characters long`, name, fe.Param())
	case "uri", "url":
		return invalid(`"%s" must be a valid uri`, name)
	case "email":
		return invalid(`"%s" must be a valid email`, name)
	case "oneof":
		return invalid(`"%s" must be one of [%s]`, name, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return invalid(`"%s" failed on the '%s' rule`, name, fe.Tag())
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = errs
	}
	return ok
}

func decodeField(field reflect.Value, fs fieldSpec, data json.RawMessage) error {
	if _, isDate := field.Interface().(*Date); isDate {
		d := new(Date)
		if err := d.UnmarshalJSON(data); err != nil {
			return invalid(`"%s" must be a valid date`, fs.name)
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	data = coerce(fs.kind, data)
	if fs.kind == reflect.Int || fs.kind == reflect.Int64 {
		return decodeInt(field, fs, data)
	}
	target := reflect.New(fs.elem)
	if err := api.Unmarshal(data, target.Interface()); err != nil {
		return typeError(fs, data)
	}
	field.Set(target)
	return nil
}

// decodeInt goes through float64 so integral values such as 4.0 are accepted.
func decodeInt(field reflect.Value, fs fieldSpec, data json.RawMessage) error {
	var f float64
	if err := api.Unmarshal(data, &f); err != nil {
		return invalid(`"%s" must be a number`, fs.name)
	}
	if f != math.Trunc(f) {
		return invalid(`"%s" must be an integer`, fs.name)
	}
	if math.Abs(f) > maxSafeInteger {
		return invalid(`"%s" must be a safe number`, fs.name)
	}
	target := reflect.New(fs.elem)
	target.Elem().SetInt(int64(f))
	field.Set(target)
	return nil
}

const maxSafeInteger = 1<<53 - 1

// coerce accepts the string forms of numbers and booleans the admin forms send.
func coerce(kind reflect.Kind, data json.RawMessage) json.RawMessage {
	if len(data) < 2 || data[0] != '"' {
		return data
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return data
	}
	s = strings.TrimSpace(s)
	switch kind {
	case reflect.Int, reflect.Int64:
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return json.RawMessage(s)
		}
	case reflect.Bool:
		if s == "true" || s == "false" {
			return json.RawMessage(s)
		}
	}
	return data
}

func typeError(fs fieldSpec, data json.RawMessage) error {
	switch fs.kind {
	case reflect.String:
		return invalid(`"%s" must be a string`, fs.name)
	case reflect.Bool:
		return invalid(`"%s" must be a boolean`, fs.name)
	case reflect.Slice:
		var items []json.RawMessage
		if api.Unmarshal(data, &items) != nil {
			return invalid(`"%s" must be an array`, fs.name)
		}
		for i, item := range items {
			var s string
			if api.Unmarshal(item, &s) != nil {
				return invalid(`"%s[%d]" must be a string`, fs.name, i)
			}
		}
		return invalid(`"%s" must be an array`, fs.name)
	default:
		return invalid(`"%s" is invalid`, fs.name)
	}
}

func isNull(data json.RawMessage) bool {
	return strings.TrimSpace(string(data)) == "null"
}

func hasSpec(specs []fieldSpec, name string) bool {
	for _, fs := range specs {
		if fs.name == name {
			return true
		}
	}
	return false
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
