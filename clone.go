package datatable

import (
	"fmt"
	"reflect"
)

// Cloner is the explicit self-clone capability. A row (or any value reachable
// from a row) that needs custom duplication semantics implements Clone and
// wins over every other copy strategy.
type Cloner interface {
	Clone() any
}

var clonerType = reflect.TypeOf((*Cloner)(nil)).Elem()

// DeepCopy duplicates a row's default instance so that overlaying a row never
// mutates the shared Defaults. Dispatch per value, in priority order:
//
//  1. nil stays nil;
//  2. a Cloner clones itself;
//  3. immutable scalars pass through;
//  4. a type with a Copy() method returning its own type copies itself;
//  5. slices and maps are rebuilt as fresh shells — element values are NOT
//     deep-copied, so mutable composites held inside a collection remain
//     shared between copies (long-standing format behavior, kept on purpose);
//  6. structs and pointers-to-struct are duplicated shallowly, then every
//     exported field is copied recursively;
//  7. anything else (chan, func, unsafe pointers) is a schema configuration
//     defect and fails the load immediately.
func DeepCopy[T any](v T) (T, error) {
	out, err := deepCopyValue(reflect.ValueOf(&v).Elem())
	if err != nil {
		var zero T
		return zero, err
	}
	return out.Interface().(T), nil
}

func deepCopyValue(v reflect.Value) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Invalid:
		return v, nil
	case reflect.Interface:
		if v.IsNil() {
			return v, nil
		}
		inner, err := deepCopyValue(v.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(inner)
		return out, nil
	case reflect.Pointer, reflect.Slice, reflect.Map:
		if v.IsNil() {
			return v, nil
		}
	}

	if v.Type().Implements(clonerType) {
		cloned := v.Interface().(Cloner).Clone()
		cv := reflect.ValueOf(cloned)
		if !cv.IsValid() || !cv.Type().AssignableTo(v.Type()) {
			return reflect.Value{}, singleIssue("", "", CodeUnsupportedKind,
				fmt.Sprintf("%s: Clone returned %T, not its own type", v.Type(), cloned))
		}
		return cv, nil
	}

	switch v.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return v, nil
	}

	// copy-constructor equivalent: Copy() returning exactly the value's type
	if m := v.MethodByName("Copy"); m.IsValid() {
		if mt := m.Type(); mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0) == v.Type() {
			return m.Call(nil)[0], nil
		}
	}

	switch v.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)
		return out, nil
	case reflect.Map:
		out := reflect.MakeMap(v.Type())
		for it := v.MapRange(); it.Next(); {
			out.SetMapIndex(it.Key(), it.Value())
		}
		return out, nil
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		return out, nil
	case reflect.Pointer:
		elem, err := deepCopyValue(v.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(elem)
		return out, nil
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			fc, err := deepCopyValue(v.Field(i))
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(i).Set(fc)
		}
		return out, nil
	}

	return reflect.Value{}, singleIssue("", "", CodeUnsupportedKind,
		fmt.Sprintf("cannot default-copy value of kind %s (%s)", v.Kind(), v.Type()))
}
