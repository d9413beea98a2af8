package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/orafile/ir"

	"github.com/goccy/go-yaml"
)

var ErrUnsupported = errors.New("unsupported value")

// ToDict converts v, which must convert to a dictionary.
func ToDict(v any) (*ir.Dict, error) {
	if v == nil {
		return ir.NewDict(), nil
	}
	val, err := ToVal(v)
	if err != nil {
		return nil, err
	}
	d, ok := val.(*ir.Dict)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %s, not Dict", ErrUnsupported, val.Type())
	}
	return d, nil
}

func ToVal(v any) (ir.Val, error) {
	switch x := v.(type) {
	case nil:
		return ir.String(""), nil
	case *ir.Dict:
		if x == nil {
			return ir.NewDict(), nil
		}
		return x, nil
	case ir.Val:
		return x, nil
	case yaml.MapSlice:
		return fromMapSlice(x)
	}
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer && val.IsNil() {
		return ir.String(""), nil
	}
	if s, ok, err := scalar(v); err != nil {
		return nil, err
	} else if ok {
		return ir.String(s), nil
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.String(""), nil
		}
		return ToVal(val.Elem().Interface())
	case reflect.Map:
		return fromMap(val)
	case reflect.Struct:
		return fromStruct(val)
	case reflect.Slice, reflect.Array:
		return fromSlice(val)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, val.Type())
	}
}

func scalar(v any) (string, bool, error) {
	if m, ok := v.(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", false, err
		}
		return string(text), true, nil
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.String:
		return val.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(val.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(val.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(val.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(val.Float(), 'f', -1, 64), true, nil
	default:
		return "", false, nil
	}
}

func keyString(k any) (string, error) {
	s, ok, err := scalar(k)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: map key of type %T", ErrUnsupported, k)
	}
	return s, nil
}

func fromMapSlice(ms yaml.MapSlice) (*ir.Dict, error) {
	res := ir.NewDict()
	for _, item := range ms {
		name, err := keyString(item.Key)
		if err != nil {
			return nil, err
		}
		v, err := ToVal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		res.Add(name, v)
	}
	return res, nil
}

func fromMap(val reflect.Value) (*ir.Dict, error) {
	type entry struct {
		name string
		val  reflect.Value
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		name, err := keyString(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{name: name, val: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.name, b.name)
	})
	res := ir.NewDict()
	for _, e := range entries {
		v, err := ToVal(e.val.Interface())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.name, err)
		}
		res.Add(e.name, v)
	}
	return res, nil
}

func fromStruct(val reflect.Value) (*ir.Dict, error) {
	res := ir.NewDict()
	ty := val.Type()
	for i := range ty.NumField() {
		field := ty.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup("ora")
		if !ok {
			tag, _ = field.Tag.Lookup("json")
		}
		if tag == "-" {
			continue
		}
		name, options, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		fv := val.Field(i)
		if strings.Contains(options, "omitempty") && fv.IsZero() {
			continue
		}
		v, err := ToVal(fv.Interface())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		res.Add(name, v)
	}
	return res, nil
}

func fromSlice(val reflect.Value) (ir.StringList, error) {
	res := make(ir.StringList, 0, val.Len())
	for i := range val.Len() {
		v, err := ToVal(val.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		s, ok := v.(ir.String)
		if !ok {
			return nil, fmt.Errorf("%w: [%d]: lists hold only scalars, got %s", ErrUnsupported, i, v.Type())
		}
		res = append(res, string(s))
	}
	return res, nil
}
