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

// Every GraphQL service is required to support the three directives defined in this file.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives

//===----------------------------------------------------------------------------------------====//
// @include
//===----------------------------------------------------------------------------------------====//
// @include keeps the annotated field, fragment spread or inline fragment in the result only when
// its if argument evaluates to true.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec--include

var includeDirective = MustNewDirective(&DirectiveConfig{
	Name: "include",
	Description: "Directs the executor to include this field or fragment only when " +
		"the `if` argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentConfigMap{
		"if": {
			Type:        NonNullOfType(Boolean()),
			Description: "Included when true.",
		},
	},
})

// IncludeDirective returns the definition of @include.
func IncludeDirective() Directive {
	return includeDirective
}

//===----------------------------------------------------------------------------------------====//
// @skip
//===----------------------------------------------------------------------------------------====//
// @skip is the mirror of @include: the annotated field, fragment spread or inline fragment is left
// out of the result when its if argument evaluates to true.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec--skip

var skipDirective = MustNewDirective(&DirectiveConfig{
	Name: "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` " +
		"argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentConfigMap{
		"if": {
			Type:        NonNullOfType(Boolean()),
			Description: "Skipped when true.",
		},
	},
})

// SkipDirective returns the definition of @skip.
func SkipDirective() Directive {
	return skipDirective
}

//===----------------------------------------------------------------------------------------====//
// @deprecated
//===----------------------------------------------------------------------------------------====//
// @deprecated marks a field definition or enum value in the type system definition language as
// being phased out, optionally with a reason pointing at the replacement.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec--deprecated

// DefaultDeprecationReason is the reason reported for a deprecation that did not give one.
const DefaultDeprecationReason = "No longer supported"

var deprecatedDirective = MustNewDirective(&DirectiveConfig{
	Name:        "deprecated",
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Locations: []DirectiveLocation{
		DirectiveLocationFieldDefinition,
		DirectiveLocationEnumValue,
	},
	Args: ArgumentConfigMap{
		"reason": {
			Type: T(String()),
			Description: "Explains why this element was deprecated, usually also including a " +
				"suggestion for how to access supported similar data. Formatted " +
				"in [Markdown](https://daringfireball.net/projects/markdown/).",
			DefaultValue: DefaultDeprecationReason,
		},
	},
})

// DeprecatedDirective returns the definition of @deprecated.
func DeprecatedDirective() Directive {
	return deprecatedDirective
}

// SpecifiedDirectives returns list of directives that are required to be supported in any GraphQL
// service as per specification. The returned slice is newly allocated on each call so the caller
// is free to modify it.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
func SpecifiedDirectives() []Directive {
	return []Directive{
		// @include
		IncludeDirective(),
		// @skip
		SkipDirective(),
		// @deprecated
		DeprecatedDirective(),
	}
}

// IsSpecifiedDirective returns true if the given directive is one of the directives defined by the
// GraphQL specification. The determination is made by name so a directive that was created apart
// from the instances served by this package still counts as a specified one.
func IsSpecifiedDirective(directive Directive) bool {
	if directive == nil {
		return false
	}
	name := directive.Name()
	for _, specifiedDirective := range SpecifiedDirectives() {
		if specifiedDirective.Name() == name {
			return true
		}
	}
	return false
}
