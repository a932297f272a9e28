package gomap

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"
)

// IRMapper is implemented by types which build their own node.
type IRMapper interface {
	ToIR() (*ir.Node, error)
}

// ToGRFON converts a Go value to GRFON text.
func ToGRFON(v any, opts ...MapOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, newMapConfig(opts).encodeOptions...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToIR converts a Go value to a node.  It uses the value's ToIR method if
// it has one and reflection otherwise.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.FromString(""), nil
	}
	visited := make(map[uintptr]string)
	node, err := toIRValue(reflect.ValueOf(v), "", visited)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return ir.FromString(""), nil
	}
	return node, nil
}

var (
	irMapperType      = reflect.TypeFor[IRMapper]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// toIRValue returns nil for nil pointers, maps, slices and interfaces.
func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return nil, nil
	}
	typ := val.Type()
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if val.IsNil() {
			return nil, nil
		}
	}
	if !val.CanInterface() {
		return nil, &MarshalError{FieldPath: fieldPath, Message: "unexported value"}
	}
	if typ.Implements(irMapperType) {
		return val.Interface().(IRMapper).ToIR()
	}
	if typ.Implements(textMarshalerType) {
		text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText", Err: err}
		}
		return ir.FromString(string(text)), nil
	}
	if val.CanAddr() && reflect.PointerTo(typ).Implements(irMapperType) {
		return val.Addr().Interface().(IRMapper).ToIR()
	}

	switch typ.Kind() {
	case reflect.Pointer:
		ptr := val.Pointer()
		if prev, seen := visited[ptr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference (previously seen at %q)", prev),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return toIRValue(val.Elem(), fieldPath, visited)
	case reflect.Interface:
		return toIRValue(val.Elem(), fieldPath, visited)
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromString(strconv.FormatUint(val.Uint(), 10)), nil
	case reflect.Float32:
		return ir.FromString(strconv.FormatFloat(val.Float(), 'g', -1, 32)), nil
	case reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return ir.FromString(string(val.Bytes())), nil
		}
		ptr := val.Pointer()
		if prev, seen := visited[ptr]; seen && val.Len() != 0 {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference (previously seen at %q)", prev),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return toIRList(val, fieldPath, visited)
	case reflect.Array:
		return toIRList(val, fieldPath, visited)
	case reflect.Map:
		return toIRMap(val, fieldPath, visited)
	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)
	}
	return nil, &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type: %s", typ),
	}
}

func toIRList(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	res := ir.NewCollection()
	for i := range val.Len() {
		elemPath := indexPath(fieldPath, i)
		elem, err := toIRValue(val.Index(i), elemPath, visited)
		if err != nil {
			return nil, err
		}
		if elem == nil {
			elem = ir.FromString("")
		}
		res.Append(elem)
	}
	return res, nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	ptr := val.Pointer()
	if prev, seen := visited[ptr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference (previously seen at %q)", prev),
		}
	}
	visited[ptr] = fieldPath
	defer delete(visited, ptr)

	res := ir.NewCollection()
	iter := val.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "map key", Err: err}
		}
		elem, err := toIRValue(iter.Value(), joinPath(fieldPath, key), visited)
		if err != nil {
			return nil, err
		}
		if elem == nil {
			continue
		}
		res.Set(key, elem)
	}
	return res, nil
}

func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		d, err := tm.MarshalText()
		return string(d), err
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", fmt.Errorf("%w: unsupported map key type %s", ErrMapping, k.Type())
}

func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	fields, err := structFields(val.Type())
	if err != nil {
		return nil, err
	}
	res := ir.NewCollection()
	for _, f := range fields {
		fv := val.FieldByIndex(f.Index)
		if f.OmitEmpty && fv.IsZero() {
			continue
		}
		elem, err := toIRValue(fv, joinPath(fieldPath, f.Name), visited)
		if err != nil {
			return nil, err
		}
		if elem == nil {
			continue
		}
		res.Set(f.Name, elem)
	}
	return res, nil
}
