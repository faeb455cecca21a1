package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized returns an error naming the first exported pointer,
// interface, map or func field of the given struct that is still nil.
// Fields tagged `wire:"-"` are skipped.
func IsStructInitialized(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.New("struct is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("wire") == "-" {
			continue
		}

		//nolint:exhaustive
		switch v.Field(i).Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
			if v.Field(i).IsNil() {
				return errors.Errorf("field %s is not initialized", field.Name)
			}
		}
	}

	return nil
}
