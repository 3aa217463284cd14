package core

import "reflect"

// Trigger observes one signal named by a constraint edge. Snapshot captures
// the current value; Changed reports whether the live value differs from a
// prior snapshot. A strongly connected component has converged when no
// trigger changed across one full pass of its members.
//
// Snapshot semantics follow the signal kind:
//   - fixed-width integer signals copy by value (ValueTrigger),
//   - structured records and everything else clone structurally
//     (DeepTrigger),
//   - exotic signals supply their own closures (FuncTrigger).
type Trigger struct {
	// Name identifies the signal, unique within one design.
	Name string

	// Snapshot captures the current value of the signal.
	Snapshot func() any

	// Changed reports whether the live value differs from prev,
	// using structural equality.
	Changed func(prev any) bool
}

// ValueTrigger builds a Trigger over a fixed-width scalar signal stored at
// p. The snapshot is a value copy; comparison is ==.
func ValueTrigger[T comparable](name string, p *T) Trigger {
	return Trigger{
		Name:     name,
		Snapshot: func() any { return *p },
		Changed:  func(prev any) bool { return prev.(T) != *p },
	}
}

// DeepTrigger builds a Trigger over a structured signal. load must return
// the live value; the snapshot is a deep clone and comparison is
// reflect.DeepEqual, so nested slices, maps, and pointers compare by
// structure rather than identity.
func DeepTrigger(name string, load func() any) Trigger {
	return Trigger{
		Name:     name,
		Snapshot: func() any { return DeepClone(load()) },
		Changed:  func(prev any) bool { return !reflect.DeepEqual(prev, load()) },
	}
}

// FuncTrigger builds a Trigger from caller-supplied closures, for signal
// kinds whose snapshot or equality is not expressible by the two defaults.
func FuncTrigger(name string, snapshot func() any, changed func(prev any) bool) Trigger {
	return Trigger{Name: name, Snapshot: snapshot, Changed: changed}
}

// DeepClone returns a structural copy of v: pointers, structs, slices,
// arrays, and maps are cloned recursively; scalars copy by value. Channels
// and funcs are shared, not cloned — signals never hold them.
func DeepClone(v any) any {
	if v == nil {
		return nil
	}

	return cloneValue(reflect.ValueOf(v)).Interface()
}

// cloneValue recursively clones rv. Unexported struct fields are skipped;
// signal records expose their state.
func cloneValue(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(cloneValue(rv.Elem()))

		return out

	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		inner := cloneValue(rv.Elem())
		out := reflect.New(rv.Type()).Elem()
		out.Set(inner)

		return out

	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.NumField(); i++ {
			if !out.Field(i).CanSet() {
				continue
			}
			out.Field(i).Set(cloneValue(rv.Field(i)))
		}

		return out

	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneValue(rv.Index(i)))
		}

		return out

	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneValue(rv.Index(i)))
		}

		return out

	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(cloneValue(iter.Key()), cloneValue(iter.Value()))
		}

		return out

	default:
		return rv
	}
}
