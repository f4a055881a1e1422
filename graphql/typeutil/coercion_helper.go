/**
 * Copyright (c) 2018, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package typeutil

import (
	"fmt"
	"math"
	"reflect"
)

// CoercionMode tells coercion handlers which of the two kinds of coercions described in [0] is
// running so they can phrase their errors accordingly.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type CoercionMode uint

const (
	// ResultCoercionMode prepares an internal value for inclusion in a result.
	ResultCoercionMode CoercionMode = iota
	// InputCoercionMode parses a value read from query variables.
	InputCoercionMode
)

// CoercionContext is handed to every coercion handler.
type CoercionContext struct {
	Mode CoercionMode
}

// CoercionHelper assists scalar types in implementing coercion. Coercing a Go value requires a
// type switch over many primitive types ({u}int{8,16,32,64} and so on) whose cases mostly share
// the same logic, but a case in a type switch can only name one type. CoercionHelper coalesces the
// logic into a hierarchy of handlers: each sized integer funnels into CoerceSignedInteger or
// CoerceUnsignedInteger and both float widths funnel into CoerceFloat, while a handler for a
// specific width can still be overridden when the width matters (e.g., checking an int64 for
// precision loss).
//
// The helper also makes sure NaN and the infinities never reach CoerceFloat. They are not "real"
// values and most scalars cannot serialize them; they get their own handlers which reject them by
// default.
//
// To implement a CoercionHelper, embed a CoercionHelperBase in a struct, override the handlers of
// interest, register the struct with SetImpl, and run coercions through Coerce.
type CoercionHelper interface {
	RaiseError(value interface{}, ctx *CoercionContext, format string, a ...interface{}) error

	RaiseInvalidTypeError(value interface{}, ctx *CoercionContext) error
	RaiseNonValue(value interface{}, ctx *CoercionContext) error

	CoerceBool(value bool, ctx *CoercionContext) (interface{}, error)

	CoerceSignedInteger(value int64, ctx *CoercionContext) (interface{}, error)
	CoerceInt(value int, ctx *CoercionContext) (interface{}, error)
	CoerceInt8(value int8, ctx *CoercionContext) (interface{}, error)
	CoerceInt16(value int16, ctx *CoercionContext) (interface{}, error)
	CoerceInt32(value int32, ctx *CoercionContext) (interface{}, error)
	CoerceInt64(value int64, ctx *CoercionContext) (interface{}, error)

	CoerceUnsignedInteger(value uint64, ctx *CoercionContext) (interface{}, error)
	CoerceUint(value uint, ctx *CoercionContext) (interface{}, error)
	CoerceUint8(value uint8, ctx *CoercionContext) (interface{}, error)
	CoerceUint16(value uint16, ctx *CoercionContext) (interface{}, error)
	CoerceUint32(value uint32, ctx *CoercionContext) (interface{}, error)
	CoerceUint64(value uint64, ctx *CoercionContext) (interface{}, error)

	CoerceInf(value interface{}, ctx *CoercionContext) (interface{}, error)
	CoerceNaN(value interface{}, ctx *CoercionContext) (interface{}, error)
	CoerceFloat(value float64, ctx *CoercionContext) (interface{}, error)
	CoerceFloat32(value float32, ctx *CoercionContext) (interface{}, error)
	CoerceFloat64(value float64, ctx *CoercionContext) (interface{}, error)

	CoerceString(value string, ctx *CoercionContext) (interface{}, error)

	CoerceNil(value interface{}, ctx *CoercionContext) (interface{}, error)
}

// CoercionHelperBase dispatches a value to the appropriate handler of a CoercionHelper
// implementation and supplies the default handlers that wire up the funneling described on
// CoercionHelper. Embed it to implement a CoercionHelper:
//
//	type timestampCoercion struct {
//		CoercionHelperBase
//	}
//
//	// CoerceSignedInteger overrides CoercionHelperBase.
//	func (coercion *timestampCoercion) CoerceSignedInteger(value int64, ctx *CoercionContext) (interface{}, error) {
//		...
//	}
type CoercionHelperBase struct {
	impl CoercionHelper
}

// SetImpl registers the CoercionHelper implementation whose handlers receive the dispatched
// values. It must be called before Coerce.
func (helper *CoercionHelperBase) SetImpl(impl CoercionHelper) {
	helper.impl = impl
}

// Coerce runs the coercion for the given value.
func (helper *CoercionHelperBase) Coerce(value interface{}, ctx CoercionContext) (interface{}, error) {
	impl := helper.impl
	if impl == nil {
		panic("no CoercionHelper was registered with SetImpl before running coercion")
	}

	switch value := value.(type) {
	case nil:
		return impl.CoerceNil(value, &ctx)

	case bool:
		return impl.CoerceBool(value, &ctx)

	case string:
		return impl.CoerceString(value, &ctx)

	case int:
		return impl.CoerceInt(value, &ctx)
	case int8:
		return impl.CoerceInt8(value, &ctx)
	case int16:
		return impl.CoerceInt16(value, &ctx)
	case int32:
		return impl.CoerceInt32(value, &ctx)
	case int64:
		return impl.CoerceInt64(value, &ctx)
	case uint:
		return impl.CoerceUint(value, &ctx)
	case uint8:
		return impl.CoerceUint8(value, &ctx)
	case uint16:
		return impl.CoerceUint16(value, &ctx)
	case uint32:
		return impl.CoerceUint32(value, &ctx)
	case uint64:
		return impl.CoerceUint64(value, &ctx)

	case float32:
		// The conversion to float64 is exact and preserves NaN and the infinities, so the
		// math predicates work for both widths.
		if f := float64(value); math.IsNaN(f) {
			return impl.CoerceNaN(value, &ctx)
		} else if math.IsInf(f, 0) {
			return impl.CoerceInf(value, &ctx)
		}
		return impl.CoerceFloat32(value, &ctx)

	case float64:
		if math.IsNaN(value) {
			return impl.CoerceNaN(value, &ctx)
		} else if math.IsInf(value, 0) {
			return impl.CoerceInf(value, &ctx)
		}
		return impl.CoerceFloat64(value, &ctx)
	}

	// Pointers carry no coercion semantics of their own. A nil pointer coerces like a nil value
	// and any other pointer coerces as the value it points to.
	if v := reflect.ValueOf(value); v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return impl.CoerceNil(value, &ctx)
		}
		return helper.Coerce(v.Elem().Interface(), ctx)
	}

	return nil, impl.RaiseInvalidTypeError(value, &ctx)
}

// RaiseError implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseError(value interface{}, ctx *CoercionContext, format string, a ...interface{}) error {
	return fmt.Errorf("failed to coerce %+v: %s", value, fmt.Sprintf(format, a...))
}

// RaiseInvalidTypeError implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseInvalidTypeError(value interface{}, ctx *CoercionContext) error {
	switch ctx.Mode {
	case ResultCoercionMode:
		return helper.impl.RaiseError(value, ctx, "unexpected result type `%T`", value)

	case InputCoercionMode:
		return helper.impl.RaiseError(value, ctx, "invalid variable type `%T`", value)
	}

	panic("unknown mode")
}

// RaiseNonValue implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseNonValue(value interface{}, ctx *CoercionContext) error {
	return helper.impl.RaiseError(value, ctx, "not a value")
}

// CoerceBool implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceBool(value bool, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceSignedInteger implements CoercionHelper. Every sized signed integer ends up here unless
// its handler was overridden.
func (helper *CoercionHelperBase) CoerceSignedInteger(value int64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceInt implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt(value int, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt8 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt8(value int8, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt16 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt16(value int16, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt32 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt32(value int32, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(int64(value), ctx)
}

// CoerceInt64 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInt64(value int64, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceSignedInteger(value, ctx)
}

// CoerceUnsignedInteger implements CoercionHelper. Every sized unsigned integer ends up here
// unless its handler was overridden.
func (helper *CoercionHelperBase) CoerceUnsignedInteger(value uint64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceUint implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint(value uint, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint8 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint8(value uint8, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint16 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint16(value uint16, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint32 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint32(value uint32, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(uint64(value), ctx)
}

// CoerceUint64 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUint64(value uint64, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceUnsignedInteger(value, ctx)
}

// CoerceInf implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceInf(value interface{}, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseNonValue(value, ctx)
}

// CoerceNaN implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceNaN(value interface{}, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseNonValue(value, ctx)
}

// CoerceFloat implements CoercionHelper. Both float widths end up here unless their handlers were
// overridden. NaN and the infinities never reach this handler.
func (helper *CoercionHelperBase) CoerceFloat(value float64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceFloat32 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceFloat32(value float32, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceFloat(float64(value), ctx)
}

// CoerceFloat64 implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceFloat64(value float64, ctx *CoercionContext) (interface{}, error) {
	return helper.impl.CoerceFloat(value, ctx)
}

// CoerceString implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceString(value string, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceNil implements CoercionHelper. Coercion accepts nil values by default.
func (helper *CoercionHelperBase) CoerceNil(value interface{}, ctx *CoercionContext) (interface{}, error) {
	return nil, nil
}
