package container

import (
	"reflect"
	"unsafe"
)

// resolver is implemented by *Handle[I].
type resolver interface {
	resolveFrom(r *Registry)
}

// inject resolves every Handle field of the struct v points to. Embedded
// structs are walked too; fields tagged `dep:"-"` are left alone.
func (r *Registry) inject(v reflect.Value) {
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	r.injectStruct(v.Elem())
}

func (r *Registry) injectStruct(s reflect.Value) {
	t := s.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("dep") == "-" {
			continue
		}
		field := s.Field(i)
		// NewAt reaches unexported fields as well.
		ptr := reflect.NewAt(f.Type, unsafe.Pointer(field.UnsafeAddr()))
		if res, ok := ptr.Interface().(resolver); ok {
			res.resolveFrom(r)
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			r.injectStruct(field)
		}
	}
}
