// Package codec supplies the canonical byte encoding used wherever this
// module needs a deterministic serialization of a value: the DRUID
// fingerprint over a transaction's inputs (spec.md §4.7) and any other
// hash-of-structure need the validator introduces. For types that carry
// unexported internals (script.Script's StackEntry payloads), Serialize
// prefers their own CanonicalBytes() method; everything else falls
// through to the teacher's reflection-based data.Marshal, which already
// walks structs/slices/pointers field-by-field in declaration order.
package codec

import (
	"reflect"

	"github.com/Yoga07/NAOM/data"
	"github.com/Yoga07/NAOM/errors"
)

// errSerializeCtx labels errors surfaced from the underlying encoder.
var errSerializeCtx = "codec: serialize"

// canonicalEncoder is implemented by domain types whose byte encoding
// cannot be derived by reflection (unexported fields, or a wire layout
// that deliberately differs from a struct's declaration order).
type canonicalEncoder interface {
	CanonicalBytes() []byte
}

// Serialize returns the canonical byte encoding of obj. A value
// implementing canonicalEncoder encodes itself; a slice whose every
// element implements it encodes as the concatenation of elements in
// order; anything else falls through to data.Marshal's reflection walk.
func Serialize(obj interface{}) ([]byte, error) {
	if ce, ok := obj.(canonicalEncoder); ok {
		return ce.CanonicalBytes(), nil
	}

	if buf, ok := serializeEncoderSlice(obj); ok {
		return buf, nil
	}

	b, err := data.Marshal(obj)
	if err != nil {
		return nil, errors.New(err, errSerializeCtx)
	}
	return b, nil
}

// serializeEncoderSlice concatenates CanonicalBytes() across a slice,
// provided every element implements it; ok is false otherwise so the
// caller can fall back to reflection.
func serializeEncoderSlice(obj interface{}) (buf []byte, ok bool) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Slice {
		return nil, false
	}
	for i := 0; i < v.Len(); i++ {
		ce, isEncoder := v.Index(i).Interface().(canonicalEncoder)
		if !isEncoder {
			return nil, false
		}
		buf = append(buf, ce.CanonicalBytes()...)
	}
	return buf, true
}
