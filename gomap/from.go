package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/parse"
)

// IRUnmapper is implemented by types which fill themselves from a node.
type IRUnmapper interface {
	FromIR(*ir.Node) error
}

// FromGRFON parses d and stores the result in the value pointed to by p.
func FromGRFON(d []byte, p any, opts ...UnmapOption) error {
	cfg := newUnmapConfig(opts)
	node, diags := parse.Parse(d, cfg.parseOptions...)
	if cfg.strict && len(diags) != 0 {
		return &UnmarshalError{Message: diags[0].String(), Err: parse.ErrParse}
	}
	if err := diags.Err(); err != nil {
		return err
	}
	return FromIR(node, p)
}

// FromIR stores node in the value pointed to by p.  It uses the FromIR
// method of p if there is one and reflection otherwise.  A nil node leaves
// p untouched.
func FromIR(node *ir.Node, p any) error {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return &UnmarshalError{Message: fmt.Sprintf("need a non-nil pointer, got %T", p)}
	}
	if node == nil {
		return nil
	}
	return fromIRValue(node, val.Elem(), "")
}

var (
	irUnmapperType      = reflect.TypeFor[IRUnmapper]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	typ := val.Type()
	if typ.Kind() == reflect.Pointer {
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromIRValue(node, val.Elem(), fieldPath)
	}
	if val.CanAddr() {
		addr := val.Addr()
		if addr.Type().Implements(irUnmapperType) {
			return addr.Interface().(IRUnmapper).FromIR(node)
		}
		if addr.Type().Implements(textUnmarshalerType) {
			if err := needValue(node, fieldPath); err != nil {
				return err
			}
			if err := addr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(node.String)); err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText", Err: err}
			}
			return nil
		}
	}

	switch typ.Kind() {
	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("cannot fill interface %s", typ)}
		}
		val.Set(reflect.ValueOf(ir.ToAny(node)))
		return nil
	case reflect.String:
		if err := needValue(node, fieldPath); err != nil {
			return err
		}
		val.SetString(node.String)
		return nil
	case reflect.Bool:
		if err := needValue(node, fieldPath); err != nil {
			return err
		}
		val.SetBool(node.Bool(false))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if err := needValue(node, fieldPath); err != nil {
			return err
		}
		i, err := strconv.ParseInt(node.String, 10, typ.Bits())
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: "integer", Err: err}
		}
		val.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if err := needValue(node, fieldPath); err != nil {
			return err
		}
		u, err := strconv.ParseUint(node.String, 10, typ.Bits())
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: "unsigned integer", Err: err}
		}
		val.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		if err := needValue(node, fieldPath); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(node.String, typ.Bits())
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: "float", Err: err}
		}
		val.SetFloat(f)
		return nil
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 && node.IsValue() {
			val.SetBytes([]byte(node.String))
			return nil
		}
		if err := needCollection(node, fieldPath); err != nil {
			return err
		}
		res := reflect.MakeSlice(typ, node.Len(), node.Len())
		for i, e := range node.Values {
			if err := fromIRValue(e, res.Index(i), indexPath(fieldPath, i)); err != nil {
				return err
			}
		}
		val.Set(res)
		return nil
	case reflect.Array:
		if err := needCollection(node, fieldPath); err != nil {
			return err
		}
		if node.Len() > typ.Len() {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d values for %s", node.Len(), typ)}
		}
		for i, e := range node.Values {
			if err := fromIRValue(e, val.Index(i), indexPath(fieldPath, i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return fromIRMap(node, val, fieldPath)
	case reflect.Struct:
		return fromIRStruct(node, val, fieldPath)
	}
	return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", typ)}
}

func fromIRMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if err := needCollection(node, fieldPath); err != nil {
		return err
	}
	typ := val.Type()
	if val.IsNil() {
		val.Set(reflect.MakeMapWithSize(typ, node.KeyCount()))
	}
	for _, k := range node.Keys() {
		kv := reflect.New(typ.Key()).Elem()
		if err := fromIRValue(ir.FromString(k), kv, fieldPath); err != nil {
			return err
		}
		ev := reflect.New(typ.Elem()).Elem()
		if err := fromIRValue(node.Fields[k], ev, joinPath(fieldPath, k)); err != nil {
			return err
		}
		val.SetMapIndex(kv, ev)
	}
	return nil
}

func fromIRStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if err := needCollection(node, fieldPath); err != nil {
		return err
	}
	fields, err := structFields(val.Type())
	if err != nil {
		return err
	}
	for _, f := range fields {
		child := node.Get(f.Name)
		if child == nil {
			continue
		}
		if err := fromIRValue(child, val.FieldByIndex(f.Index), joinPath(fieldPath, f.Name)); err != nil {
			return err
		}
	}
	return nil
}

func needValue(node *ir.Node, fieldPath string) error {
	if node.IsValue() {
		return nil
	}
	return &UnmarshalError{FieldPath: fieldPath, Message: "expected a value, got a collection"}
}

func needCollection(node *ir.Node, fieldPath string) error {
	if node.IsCollection() {
		return nil
	}
	// an empty value stands for a nil collection
	if node.String == "" {
		return nil
	}
	return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected a collection, got value %q", node.String)}
}
