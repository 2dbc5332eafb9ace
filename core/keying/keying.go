package keying

import (
	"fmt"
	"reflect"
	"strings"
)

// Options controls how Assign derives identity keys.
type Options[T any] struct {
	// Field is the name of the key field (Go field name or json tag, case-insensitive).
	Field string

	// KeyFunc derives the key from an entity. The second result reports whether
	// a key exists at all.
	KeyFunc func(T) (string, bool)

	// SkipMissing drops entities without a key instead of failing.
	// The kept entities are numbered densely in input order.
	SkipMissing bool
}

// PK binds an assigned identifier to its entity.
type PK[T any] struct {
	ID     int
	Key    string
	Entity T
}

// Index is an insertion-ordered mapping from identity key to PK.
type Index[T any] struct {
	keys  []string
	items map[string]PK[T]
}

// Assign enumerates entities and indexes them by their identity key.
func Assign[T any](entities []T, opts Options[T]) (*Index[T], error) {
	if (opts.Field == "") == (opts.KeyFunc == nil) {
		return nil, ErrConfig
	}

	idx := &Index[T]{
		keys:  make([]string, 0, len(entities)),
		items: make(map[string]PK[T], len(entities)),
	}

	for position, entity := range entities {
		var (
			key string
			ok  bool
		)
		if opts.KeyFunc != nil {
			key, ok = opts.KeyFunc(entity)
		} else {
			key, ok = fieldKey(entity, opts.Field)
		}

		if !ok {
			if opts.SkipMissing {
				continue
			}
			return nil, &MissingKeyError{Field: opts.Field, Position: position, Entity: entity}
		}

		if existing, taken := idx.items[key]; taken {
			return nil, &DuplicateKeyError{Key: key, ExistingID: existing.ID, Position: position, Entity: entity}
		}

		idx.keys = append(idx.keys, key)
		idx.items[key] = PK[T]{ID: len(idx.keys) - 1, Key: key, Entity: entity}
	}

	return idx, nil
}

// Len returns the number of indexed entities.
func (x *Index[T]) Len() int {
	return len(x.keys)
}

// Get returns the PK stored under key.
func (x *Index[T]) Get(key string) (PK[T], bool) {
	pk, ok := x.items[key]
	return pk, ok
}

// Values returns all PKs in enumeration order.
func (x *Index[T]) Values() []PK[T] {
	out := make([]PK[T], 0, len(x.keys))
	for _, key := range x.keys {
		out = append(out, x.items[key])
	}
	return out
}

// Replace swaps the entity stored under key, keeping its identifier.
// It reports false when the key is unknown.
func (x *Index[T]) Replace(key string, entity T) bool {
	pk, ok := x.items[key]
	if !ok {
		return false
	}
	pk.Entity = entity
	x.items[key] = pk
	return true
}

// fieldKey resolves a named field on a struct, struct pointer or map[string]any.
// Nil pointers, nil interfaces and absent fields count as missing.
func fieldKey(entity any, field string) (string, bool) {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	var fv reflect.Value
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return "", false
		}
		fv = v.MapIndex(reflect.ValueOf(field).Convert(v.Type().Key()))
		if !fv.IsValid() {
			return "", false
		}
	case reflect.Struct:
		fv = structField(v, field)
		if !fv.IsValid() {
			return "", false
		}
	default:
		return "", false
	}

	for fv.Kind() == reflect.Ptr || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return "", false
		}
		fv = fv.Elem()
	}

	return fmt.Sprint(fv.Interface()), true
}

func structField(v reflect.Value, field string) reflect.Value {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if strings.EqualFold(tag, field) || strings.EqualFold(f.Name, field) {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}
