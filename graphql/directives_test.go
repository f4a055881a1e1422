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

package graphql_test

import (
	"github.com/botobag/selene/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Specified Directives", func() {
	Describe("@include", func() {
		It("applies to fields, fragment spreads and inline fragments", func() {
			directive := graphql.IncludeDirective()
			Expect(directive.Name()).Should(Equal("include"))
			Expect(directive.Description()).ShouldNot(BeEmpty())
			Expect(directive.String()).Should(Equal("@include"))
			Expect(directive.Locations()).Should(Equal([]graphql.DirectiveLocation{
				graphql.DirectiveLocationField,
				graphql.DirectiveLocationFragmentSpread,
				graphql.DirectiveLocationInlineFragment,
			}))
		})

		It("requires a boolean condition argument", func() {
			args := graphql.IncludeDirective().Args()
			Expect(args).Should(HaveLen(1))

			arg := &args[0]
			Expect(arg.Name()).Should(Equal("if"))
			Expect(arg.Type()).Should(Equal(graphql.MustNewNonNullOfType(graphql.Boolean())))
			Expect(arg.HasDefaultValue()).Should(BeFalse())
			Expect(graphql.IsRequiredArgument(arg)).Should(BeTrue())
		})
	})

	Describe("@skip", func() {
		It("applies to fields, fragment spreads and inline fragments", func() {
			directive := graphql.SkipDirective()
			Expect(directive.Name()).Should(Equal("skip"))
			Expect(directive.Description()).ShouldNot(BeEmpty())
			Expect(directive.String()).Should(Equal("@skip"))
			Expect(directive.Locations()).Should(Equal([]graphql.DirectiveLocation{
				graphql.DirectiveLocationField,
				graphql.DirectiveLocationFragmentSpread,
				graphql.DirectiveLocationInlineFragment,
			}))
		})

		It("requires a boolean condition argument", func() {
			args := graphql.SkipDirective().Args()
			Expect(args).Should(HaveLen(1))

			arg := &args[0]
			Expect(arg.Name()).Should(Equal("if"))
			Expect(arg.Type()).Should(Equal(graphql.MustNewNonNullOfType(graphql.Boolean())))
			Expect(arg.HasDefaultValue()).Should(BeFalse())
			Expect(graphql.IsRequiredArgument(arg)).Should(BeTrue())
		})
	})

	Describe("@deprecated", func() {
		It("applies to field and enum value definitions", func() {
			directive := graphql.DeprecatedDirective()
			Expect(directive.Name()).Should(Equal("deprecated"))
			Expect(directive.Description()).ShouldNot(BeEmpty())
			Expect(directive.String()).Should(Equal("@deprecated"))
			Expect(directive.Locations()).Should(Equal([]graphql.DirectiveLocation{
				graphql.DirectiveLocationFieldDefinition,
				graphql.DirectiveLocationEnumValue,
			}))
		})

		It("defaults the reason argument to DefaultDeprecationReason", func() {
			Expect(graphql.DefaultDeprecationReason).Should(Equal("No longer supported"))

			args := graphql.DeprecatedDirective().Args()
			Expect(args).Should(HaveLen(1))

			arg := &args[0]
			Expect(arg.Name()).Should(Equal("reason"))
			Expect(arg.Type()).Should(Equal(graphql.String()))
			Expect(arg.HasDefaultValue()).Should(BeTrue())
			Expect(arg.DefaultValue()).Should(Equal(graphql.DefaultDeprecationReason))
			Expect(graphql.IsRequiredArgument(arg)).Should(BeFalse())
		})
	})

	It("returns the same instance on every access", func() {
		Expect(graphql.IncludeDirective()).Should(BeIdenticalTo(graphql.IncludeDirective()))
		Expect(graphql.SkipDirective()).Should(BeIdenticalTo(graphql.SkipDirective()))
		Expect(graphql.DeprecatedDirective()).Should(BeIdenticalTo(graphql.DeprecatedDirective()))
	})

	Describe("SpecifiedDirectives", func() {
		It("lists @include, @skip and @deprecated in order", func() {
			Expect(graphql.SpecifiedDirectives()).Should(Equal([]graphql.Directive{
				graphql.IncludeDirective(),
				graphql.SkipDirective(),
				graphql.DeprecatedDirective(),
			}))
		})

		It("returns a slice that is free for the caller to modify", func() {
			directives := graphql.SpecifiedDirectives()
			directives[0] = nil
			Expect(graphql.SpecifiedDirectives()[0]).Should(Equal(graphql.IncludeDirective()))
		})
	})

	// graphql-js/src/type/__tests__/predicate-test.js
	Describe("IsSpecifiedDirective", func() {
		It("returns true for specified directives", func() {
			Expect(graphql.IsSpecifiedDirective(graphql.IncludeDirective())).Should(BeTrue())
			Expect(graphql.IsSpecifiedDirective(graphql.SkipDirective())).Should(BeTrue())
			Expect(graphql.IsSpecifiedDirective(graphql.DeprecatedDirective())).Should(BeTrue())
		})

		It("determines by directive name", func() {
			// A directive created apart from the instances served by this package still counts as a
			// specified one as long as it takes the name.
			directive := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name: "skip",
			})
			Expect(directive).ShouldNot(BeIdenticalTo(graphql.SkipDirective()))
			Expect(graphql.IsSpecifiedDirective(directive)).Should(BeTrue())
		})

		It("returns false for custom directives", func() {
			directive := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name: "permission",
				Locations: []graphql.DirectiveLocation{
					graphql.DirectiveLocationField,
				},
			})
			Expect(graphql.IsSpecifiedDirective(directive)).Should(BeFalse())
		})

		It("returns false for no directive", func() {
			Expect(graphql.IsSpecifiedDirective(nil)).Should(BeFalse())
		})
	})
})
