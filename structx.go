// Package structx provides runtime access to struct fields by name.
package structx

import (
	"reflect"
)

// Get returns the value of the named field of object. object may be a struct
// or a pointer to a struct; a pointer is dereferenced before the lookup.
// Promoted fields of embedded structs are found by name like any other field.
//
// The second return value reports whether the field was found. Get returns
// false instead of panicking when object is nil or a nil pointer, when object
// is not a struct, or when the field does not exist or is unexported.
func Get(object any, field string) (any, bool) {
	reflectValue := reflect.Indirect(reflect.ValueOf(object))
	if reflectValue.Kind() != reflect.Struct {
		return nil, false
	}

	reflectFieldValue := reflectValue.FieldByName(field)
	if !reflectFieldValue.IsValid() || !reflectFieldValue.CanInterface() {
		return nil, false
	}

	return reflectFieldValue.Interface(), true
}
