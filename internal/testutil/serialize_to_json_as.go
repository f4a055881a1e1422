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

package testutil

import (
	// Tests verify serialization with the standard library encoder on purpose to cross-check the
	// jsoniter-based one used in non-testing code.
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

type serializeToJSONAsMatcher struct {
	expected interface{}
}

// SerializeToJSONAs returns a Gomega matcher that checks a value serializes to the same JSON as
// the expected one. Both sides are encoded with encoding/json and decoded back into the expected
// value's type before comparing, so differences in custom MarshalJSON implementations surface
// while irrelevant formatting does not.
func SerializeToJSONAs(expected interface{}) types.GomegaMatcher {
	return serializeToJSONAsMatcher{
		expected: expected,
	}
}

// Match implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) Match(actual interface{}) (success bool, err error) {
	// Both sides decode into the expected value's type before comparing.
	canonicalType := reflect.TypeOf(matcher.expected)

	decodedActual, err := jsonRoundTrip(actual, canonicalType)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher failed on the actual value: %s", err)
	}

	decodedExpected, err := jsonRoundTrip(matcher.expected, canonicalType)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher failed on the expected value: %s", err)
	}

	return reflect.DeepEqual(decodedActual, decodedExpected), nil
}

// jsonRoundTrip encodes value with encoding/json and decodes the result into a freshly allocated
// instance of the given type.
func jsonRoundTrip(value interface{}, t reflect.Type) (interface{}, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %#v into JSON: %s", value, err)
	}

	decoded := reflect.New(t).Interface()
	if err := json.Unmarshal(encoded, decoded); err != nil {
		return nil, fmt.Errorf("cannot decode %s into type %s: %s", encoded, t, err)
	}
	return decoded, nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) FailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "to serialize to the same JSON as", matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "not to serialize to the same JSON as", matcher.expected)
}
