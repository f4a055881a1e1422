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

package graphql

import (
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strconv"
	"unsafe"

	"github.com/botobag/selene/graphql/ast"
	"github.com/botobag/selene/internal/util"

	"github.com/json-iterator/go"
)

// Op names the operation that raised an error, usually as package and method, such as
// "graphql.NewDirective".
type Op string

// ErrKind classifies an error.
type ErrKind uint8

// The error kinds
const (
	ErrKindOther      ErrKind = iota // unclassified; left out of printed messages
	ErrKindCoercion                  // value failed input or result coercion for a GraphQL type
	ErrKindDefinition                // invalid type or directive definition given to a constructor
	ErrKindInvariant                 // violated expectation on an API contract
	ErrKindInternal                  // something inside the library went wrong
)

var errKindStrings = [...]string{
	ErrKindOther:      "other error",
	ErrKindCoercion:   "coercion error",
	ErrKindDefinition: "definition error",
	ErrKindInvariant:  "invariant violation",
	ErrKindInternal:   "internal error",
}

func (k ErrKind) String() string {
	if int(k) < len(errKindStrings) {
		return errKindStrings[k]
	}
	return "unknown error kind"
}

// ErrorExtensions feeds the "extensions" entry of a serialized GraphQL error. It carries
// vendor-specific error data such as an error code.
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// ErrorLocation points at the beginning of the syntax element an error refers to.
type ErrorLocation struct {
	// Both line and column count from 1.
	Line   uint
	Column uint
}

// ErrorWithLocations is implemented by errors that know which source locations they refer to. When
// NewError receives no locations in its arguments, it lifts them from an underlying error
// implementing this interface.
type ErrorWithLocations interface {
	Locations() []ErrorLocation
}

// ErrorWithASTNodes implements ErrorWithLocations on top of a list of AST nodes. Embed it in an
// error type that pins its locations to syntax nodes rather than raw positions.
type ErrorWithASTNodes struct {
	Nodes []ast.Node
}

var _ ErrorWithLocations = ErrorWithASTNodes{}

// ErrorLocationOfASTNode resolves the location at which an AST node starts.
func ErrorLocationOfASTNode(node ast.Node) ErrorLocation {
	tok := node.TokenRange().First
	locationInfo := tok.LocationInfo()
	return ErrorLocation{
		Line:   locationInfo.Line,
		Column: locationInfo.Column,
	}
}

// Locations implements ErrorWithLocations.
func (err ErrorWithASTNodes) Locations() []ErrorLocation {
	if len(err.Nodes) > 0 {
		locations := make([]ErrorLocation, len(err.Nodes))
		for i, node := range err.Nodes {
			locations[i] = ErrorLocationOfASTNode(node)
		}
		return locations
	}
	return nil
}

// ResponsePath addresses one field in a response: a sequence of keys where each key is either a
// field name (a string) or an index into a list (an int). Errors attributable to a particular
// field carry one.
type ResponsePath struct {
	keys []interface{}
}

// Empty reports whether the path contains no keys.
func (path ResponsePath) Empty() bool {
	return len(path.keys) == 0
}

// AppendFieldName adds a field name at the end of the path.
func (path *ResponsePath) AppendFieldName(name string) {
	path.keys = append(path.keys, name)
}

// AppendIndex adds a list index at the end of the path.
func (path *ResponsePath) AppendIndex(index int) {
	path.keys = append(path.keys, index)
}

// Clone copies the path so appends on either copy leave the other alone.
func (path ResponsePath) Clone() ResponsePath {
	if len(path.keys) == 0 {
		return ResponsePath{}
	}

	keys := make([]interface{}, len(path.keys))
	copy(keys, path.keys)
	return ResponsePath{keys}
}

// String renders the path the way one would write it in code, e.g. hero.friends[1].name.
func (path ResponsePath) String() string {
	var b util.StringBuilder
	for _, key := range path.keys {
		switch key := key.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteRune('.')
			}
			b.WriteString(key)

		case int:
			b.WriteRune('[')
			b.WriteString(strconv.FormatInt(int64(key), 10))
			b.WriteRune(']')

			// No other key type exists.
		}
	}
	return b.String()
}

// responsePathMarshaller encodes a ResponsePath as the JSON array of its keys.
type responsePathMarshaller struct{}

var _ jsoniter.ValEncoder = responsePathMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (responsePathMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return len((*ResponsePath)(ptr).keys) == 0
}

// Encode implements jsoniter.ValEncoder.
func (responsePathMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	path := (*ResponsePath)(ptr)
	numPathKeys := len(path.keys)
	stream.WriteArrayStart()
	for i, key := range path.keys {
		switch key := key.(type) {
		case string:
			stream.WriteString(key)
		case int:
			stream.WriteInt(key)
		default:
			stream.Error = fmt.Errorf(`unsupported type "%T" of key in response path`, key)
			return
		}

		if i != numPathKeys-1 {
			stream.WriteMore()
		}
	}
	stream.WriteArrayEnd()
}

// MarshalJSON serializes the path keys to JSON.
func (path *ResponsePath) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(path)
}

// ErrorWithPath is implemented by errors that know which response field they refer to. When
// NewError receives no path in its arguments, it lifts the path from an underlying error
// implementing this interface.
type ErrorWithPath interface {
	Path() ResponsePath
}

// ErrorWithExtensions is implemented by errors carrying extensions data, lifted by NewError the
// same way as locations and path.
type ErrorWithExtensions interface {
	Extensions() ErrorExtensions
}

// An Error describes a failure encountered while building type system definitions or while
// coercing values for them. It serializes to the JSON shape required for the "errors" entry of a
// response [0].
//
// An Error may wrap another error. Whatever context the arguments to NewError leave unspecified is
// propagated from the wrapped error, so each function on the return path can pass the error
// through, annotate it, or rewrite it without losing what was attached below.
//
// Op and Kind never serialize; they show up when the error value is printed and exist for the
// developer reading a log.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Errors
type Error struct {
	// Message describes the failure. Every GraphQL error carries one.
	Message string

	// Locations lists the { line, column } positions in the request document this error refers to.
	// Included when the error can be pinned to points in the document. Validation errors often carry
	// several, for example both definitions of a duplicated name.
	Locations []ErrorLocation

	// Path addresses the response field that failed. Included when the error belongs to a particular
	// field in the result. See the example in [0].
	//
	// [0]: https://facebook.github.io/graphql/June2018/#example-90475
	Path ResponsePath

	// Extensions carries additional data for the serialized error.
	Extensions ErrorExtensions

	// Err is the underlying error this one wraps, if any.
	Err error

	// Op is the operation being performed.
	Op Op

	// Kind is the class of error.
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an error value from a message and loosely typed context arguments. The design
// follows upspin.io/errors [0]: each argument is recognized by its type (an ErrorLocation, a
// ResponsePath, an Op and so on) and fills the corresponding field.
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg

		case ResponsePath:
			e.Path = arg

		case ErrorExtensions:
			e.Extensions = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Whatever the arguments left unset comes from the underlying error, when there is one.
	prev := e.Err
	if prev != nil {
		if len(e.Locations) == 0 {
			switch errWithLocations := prev.(type) {
			case ErrorWithLocations:
				e.Locations = errWithLocations.Locations()
			case *Error:
				if len(errWithLocations.Locations) > 0 {
					e.Locations = make([]ErrorLocation, len(errWithLocations.Locations))
					copy(e.Locations, errWithLocations.Locations)
				}
			}
		}

		if e.Path.Empty() {
			switch errWithPath := prev.(type) {
			case ErrorWithPath:
				e.Path = errWithPath.Path()
			case *Error:
				if !errWithPath.Path.Empty() {
					e.Path = errWithPath.Path.Clone()
				}
			}
		}

		if e.Extensions == nil {
			switch errWithExtensions := prev.(type) {
			case ErrorWithExtensions:
				e.Extensions = errWithExtensions.Extensions()
			case *Error:
				e.Extensions = errWithExtensions.Extensions
			}
		}

		if e.Kind == ErrKindOther {
			if prev, ok := prev.(*Error); ok {
				e.Kind = prev.Kind
			}
		}
	}

	return e
}

// WrapError builds an Error wrapping err with a message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is WrapError with a format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b util.StringBuilder
	e.printError(&b, nil)
	return b.String()
}

// printError writes e to b. nextErr is the wrapping Error already printed, so context it has shown
// (identical locations, path, kind or extensions) stays silent instead of repeating on every link
// of the chain.
func (e *Error) printError(b *util.StringBuilder, nextErr *Error) {
	initialLen := b.Len()

	// pad writes str only when this error has produced output already.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Locations != nil {
		if nextErr == nil || !reflect.DeepEqual(nextErr.Locations, e.Locations) {
			if b.Len() == initialLen {
				b.WriteString("At ")
			} else {
				b.WriteString(" at ")
			}
			b.WriteString(fmt.Sprintf("%+v", e.Locations))
		}
	}

	if !e.Path.Empty() {
		if nextErr == nil || !reflect.DeepEqual(nextErr.Path, e.Path) {
			if b.Len() == initialLen {
				b.WriteString("For ")
			} else {
				b.WriteString(" for ")
			}
			b.WriteString("response field in the path ")
			b.WriteString(e.Path.String())
		}
	}

	if e.Kind != ErrKindOther {
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if len(e.Extensions) > 0 {
		if nextErr == nil || !reflect.DeepEqual(nextErr.Extensions, e.Extensions) {
			pad(" (additional info: ")
			b.WriteString(fmt.Sprintf("%v)", e.Extensions))
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Each Error in the chain prints on its own indented line.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller encodes an Error with exactly the fields a serialized GraphQL error may carry:
// message, locations, path and extensions. Op, Kind and Err stay out.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	numLocations := len(err.Locations)
	if numLocations > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i := range err.Locations {
			location := &err.Locations[i]
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(location.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(location.Column)
			stream.WriteObjectEnd()
			if i != numLocations-1 {
				stream.WriteMore()
			}
		}
		stream.WriteArrayEnd()
	}

	if !err.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteVal(&err.Path)
	}

	numExtensions := len(err.Extensions)
	if numExtensions > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteObjectStart()
		for k, v := range err.Extensions {
			stream.WriteObjectField(k)
			stream.WriteVal(v)
			numExtensions--
			if numExtensions > 0 {
				stream.WriteMore()
			}
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

// Errors holds a list of Error. It is a struct rather than a bare []*Error so existence checks go
// through errs.HaveOccurred(); a comparison against nil would misread an allocated-but-empty list
// as a failure.
type Errors struct {
	Errors []*Error
}

// ErrorsOf constructs an Errors value. It accepts, and panics on anything else:
//
// 1. A list of *graphql.Error's; or
// 2. Arguments acceptable to NewError, i.e. a message string followed by error context (such as
//    locations); or
// 3. A list of *graphql.Error's followed by arguments acceptable to NewError.
//
// Handy in construct-and-return position:
//
//	func validateConfig(config *Config) graphql.Errors {
//		...
//		return graphql.ErrorsOf("config is missing a name")
//	}
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)

		case string:
			errs.Emplace(arg, args[(i+1):]...)
			return errs

		default:
			panic("Errors.Emplace: bad call")
		}
	}
	return errs
}

// NoErrors returns an Errors with nothing in it.
func NoErrors() Errors {
	return Errors{}
}

// Emplace constructs an Error from arguments, NewError style, and appends it in place. The name is
// borrowed from C++'s std::list::emplace. Unsupported arguments panic via Append.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends errors in place. Every given error must be a *graphql.Error or the type assertion
// panics; in particular, the plain error NewError returns for arguments of unknown type does not
// qualify.
func (errs *Errors) Append(e ...error) {
	for _, err := range e {
		errs.Errors = append(errs.Errors, err.(*Error))
	}
}

// AppendErrors pulls every Error out of the given lists and appends them in place.
func (errs *Errors) AppendErrors(e ...Errors) {
	size := len(errs.Errors)
	for _, err := range e {
		size += len(err.Errors)
	}

	newErrors := make([]*Error, size)
	copy(newErrors, errs.Errors)

	i := len(errs.Errors)
	for _, err := range e {
		copy(newErrors[i:], err.Errors)
		i += len(err.Errors)
	}

	errs.Errors = newErrors
}

// HaveOccurred reports whether the list contains any error. Use this rather than comparing against
// nil; an empty list means no errors.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

func init() {
	// Registered by type name so jsoniter serializes with the encoders above rather than bouncing
	// back into MarshalJSON.
	jsoniter.RegisterTypeEncoder("graphql.ResponsePath", responsePathMarshaller{})
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}
