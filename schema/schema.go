// Package schema validates decoded JSON values against expected domain
// shapes before they are trusted as typed entities. The backend contract is
// not enforced at compile time, so every response body passes through one of
// these schemas first.
//
// Schemas are plain composable values and never panic: validation of any
// input yields a boolean.
package schema

// Schema reports whether a decoded JSON value (the result of unmarshalling
// into any) conforms to an expected shape.
type Schema interface {
	Validate(v any) bool
}

type primitive int

const (
	stringKind primitive = iota
	numberKind
	booleanKind
)

func (p primitive) Validate(v any) bool {
	switch p {
	case stringKind:
		_, ok := v.(string)
		return ok
	case numberKind:
		// encoding/json decodes every number to float64.
		_, ok := v.(float64)
		return ok
	case booleanKind:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// String matches any JSON string.
var String Schema = stringKind

// Number matches any JSON number.
var Number Schema = numberKind

// Boolean matches a JSON boolean.
var Boolean Schema = booleanKind

type oneOf []string

func (o oneOf) Validate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, allowed := range o {
		if s == allowed {
			return true
		}
	}
	return false
}

// OneOf matches a string drawn from a fixed literal set.
func OneOf(values ...string) Schema {
	return oneOf(values)
}

type optional struct {
	inner Schema
}

func (o optional) Validate(v any) bool {
	return o.inner.Validate(v)
}

// Optional marks an Object field as allowed to be absent. A present value
// must still match the inner schema.
func Optional(s Schema) Schema {
	return optional{inner: s}
}

type nullable struct {
	inner Schema
}

func (n nullable) Validate(v any) bool {
	if v == nil {
		return true
	}
	return n.inner.Validate(v)
}

// Nullable matches either JSON null or the inner schema.
func Nullable(s Schema) Schema {
	return nullable{inner: s}
}

// Object matches a JSON object. Fields not named are ignored; named fields
// are required unless wrapped in Optional.
type Object map[string]Schema

func (o Object) Validate(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for name, field := range o {
		value, present := m[name]
		if !present {
			if _, isOptional := field.(optional); isOptional {
				continue
			}
			return false
		}
		if !field.Validate(value) {
			return false
		}
	}
	return true
}

type array struct {
	elem Schema
}

func (a array) Validate(v any) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if !a.elem.Validate(item) {
			return false
		}
	}
	return true
}

// Array matches a JSON array whose every element matches elem. An empty
// array is valid.
func Array(elem Schema) Schema {
	return array{elem: elem}
}

type lazy func() Schema

func (l lazy) Validate(v any) bool {
	return l().Validate(v)
}

// Lazy defers schema resolution to validation time, breaking definition
// cycles such as User -> Business -> User.
func Lazy(resolve func() Schema) Schema {
	return lazy(resolve)
}
