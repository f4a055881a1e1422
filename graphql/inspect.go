/**
 * Copyright (c) 2019, The Selene Authors.
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

package graphql

import (
	"fmt"
	"io"
	"reflect"
	"runtime"

	"github.com/botobag/selene/internal/util"
	"github.com/botobag/selene/jsonwriter"
)

// ValueWithCustomInspect lets a value override how Inspect serializes it.
type ValueWithCustomInspect interface {
	Inspect(out io.Writer) error
}

// InspectTo prints the Go value v to out in the format of graphql-js's inspect function. The
// implementation matches
// https://github.com/graphql/graphql-js/blob/4cdc8e2/src/jsutils/inspect.js.
//
// Note that errors returned from writes to out are ignored.
func InspectTo(out io.Writer, v interface{}) error {
	if v, ok := v.(ValueWithCustomInspect); ok {
		return v.Inspect(out)
	}

	// GraphQL types are serialized with their type notation (e.g., "[Int!]").
	if t, ok := v.(Type); ok {
		_, err := io.WriteString(out, t.String())
		return err
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.String:
		// graphql-js: JSON.stringify(value)
		stream := jsonwriter.NewStream(out)
		stream.WriteString(v.(string))
		if err := stream.Flush(); err != nil {
			return err
		}

	case reflect.Func:
		f := runtime.FuncForPC(value.Pointer())
		io.WriteString(out, "[function ")
		io.WriteString(out, f.Name())
		io.WriteString(out, "]")

	case reflect.Array, reflect.Slice:
		io.WriteString(out, "[")
		size := value.Len()
		for i := 0; i < size; i++ {
			if i > 0 {
				io.WriteString(out, ", ")
			}
			if err := InspectTo(out, value.Index(i).Interface()); err != nil {
				return err
			}
		}
		io.WriteString(out, "]")

	case reflect.Map:
		keys := value.MapKeys()
		if len(keys) == 0 {
			io.WriteString(out, "{}")
			break
		}
		io.WriteString(out, "{ ")
		for i, key := range keys {
			if i > 0 {
				io.WriteString(out, ", ")
			}
			if err := InspectTo(out, key.Interface()); err != nil {
				return err
			}
			io.WriteString(out, ": ")
			if err := InspectTo(out, value.MapIndex(key).Interface()); err != nil {
				return err
			}
		}
		io.WriteString(out, " }")

	case reflect.Struct:
		typ := value.Type()
		numFields := typ.NumField()
		first := true
		for i := 0; i < numFields; i++ {
			field := typ.Field(i)
			// Unexported fields cannot be read via Interface. Skip them.
			if len(field.PkgPath) > 0 {
				continue
			}

			if first {
				io.WriteString(out, "{ ")
				first = false
			} else {
				io.WriteString(out, ", ")
			}

			io.WriteString(out, field.Name)
			io.WriteString(out, ": ")

			if err := InspectTo(out, value.Field(i).Interface()); err != nil {
				return err
			}
		}
		if first {
			io.WriteString(out, "{}")
		} else {
			io.WriteString(out, " }")
		}

	case reflect.Ptr:
		elem := value.Elem()
		if !elem.IsValid() {
			io.WriteString(out, "null")
			return nil
		}
		return InspectTo(out, elem.Interface())

	case reflect.Invalid:
		io.WriteString(out, "null")

	default:
		if _, err := fmt.Fprint(out, v); err != nil {
			return err
		}
	}

	return nil
}

// Inspect calls InspectTo but panics on error.
func Inspect(v interface{}) string {
	var buf util.StringBuilder
	if err := InspectTo(&buf, v); err != nil {
		panic(fmt.Sprintf("inspect %+v with error: %s", v, err))
	}
	return buf.String()
}
