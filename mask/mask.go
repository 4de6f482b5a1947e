// Package mask flattens structs into ordered maps with sensitive fields hidden,
// so configuration can be printed or logged without leaking credentials.
package mask

import (
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	tagName = "mask"

	// Placeholder replaces masked values.
	Placeholder = "****"

	// revealTail is how many trailing characters of a long secret stay visible.
	revealTail = 4
	// minRevealLen is the shortest secret that gets a visible tail.
	minRevealLen = 12
)

// StructToOrdMap returns an ordered map of the exported fields of v.
// Nested structs are flattened into dotted keys. Fields tagged `mask:"true"`
// are replaced by Placeholder unless they hold a zero value.
// Field names are taken from the yaml tag, then the json tag, then the field name.
func StructToOrdMap(v any) *orderedmap.OrderedMap[string, any] {
	if v == nil {
		return nil
	}
	om := orderedmap.New[string, any]()
	flatten(om, reflect.ValueOf(v), "")
	return om
}

func flatten(om *orderedmap.OrderedMap[string, any], val reflect.Value, prefix string) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			om.Set(prefix, nil)
			return
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		om.Set(prefix, val.Interface())
		return
	}

	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		name, skip := fieldName(fieldType)
		if skip {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		switch {
		case strings.EqualFold(fieldType.Tag.Get(tagName), "true"):
			om.Set(name, hide(field))
		case isStruct(field):
			flatten(om, field, name)
		default:
			om.Set(name, field.Interface())
		}
	}
}

func isStruct(val reflect.Value) bool {
	if val.Kind() == reflect.Pointer {
		return val.Type().Elem().Kind() == reflect.Struct
	}
	return val.Kind() == reflect.Struct
}

// hide masks a value. Zero values are kept so that unset secrets stay visible as unset.
func hide(val reflect.Value) any {
	if val.IsZero() {
		if val.Kind() == reflect.Pointer || val.Kind() == reflect.Slice || val.Kind() == reflect.Map {
			return nil
		}
		return val.Interface()
	}
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.Kind() == reflect.String {
		s := val.String()
		if len(s) >= minRevealLen {
			return Placeholder + s[len(s)-revealTail:]
		}
	}
	return Placeholder
}

// fieldName returns the printable name of a field and whether it must be skipped.
func fieldName(field reflect.StructField) (string, bool) {
	for _, tag := range []string{"yaml", "json"} {
		raw, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(raw, ",")
		if name == "-" {
			return "", true
		}
		if name != "" {
			return name, false
		}
	}
	return field.Name, false
}
