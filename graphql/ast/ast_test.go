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

package ast_test

import (
	"github.com/botobag/selene/graphql/ast"
	"github.com/botobag/selene/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// chainTokens links the given tokens into the Prev/Next list the lexer would produce.
func chainTokens(tokens ...*token.Token) {
	for i := 1; i < len(tokens); i++ {
		tokens[i].Prev = tokens[i-1]
		tokens[i-1].Next = tokens[i]
	}
}

var _ = Describe("DirectiveDefinition", func() {
	// Token chain for: directive @skip(if: Boolean!) on FIELD | INLINE_FRAGMENT
	var (
		sof         *token.Token
		directiveKw *token.Token
		at          *token.Token
		name        *token.Token
		leftParen   *token.Token
		argName     *token.Token
		colon       *token.Token
		typeName    *token.Token
		bang        *token.Token
		rightParen  *token.Token
		onKw        *token.Token
		fieldLoc    *token.Token
		pipe        *token.Token
		inlineLoc   *token.Token
		eof         *token.Token

		definition *ast.DirectiveDefinition
	)

	BeforeEach(func() {
		source := token.NewSource(&token.SourceConfig{
			Body: token.SourceBody("directive @skip(if: Boolean!) on FIELD | INLINE_FRAGMENT"),
		})

		sof = token.NewSOFToken(source)
		directiveKw = &token.Token{Kind: token.KindName, Value: "directive"}
		at = &token.Token{Kind: token.KindAt}
		name = &token.Token{Kind: token.KindName, Value: "skip"}
		leftParen = &token.Token{Kind: token.KindLeftParen}
		argName = &token.Token{Kind: token.KindName, Value: "if"}
		colon = &token.Token{Kind: token.KindColon}
		typeName = &token.Token{Kind: token.KindName, Value: "Boolean"}
		bang = &token.Token{Kind: token.KindBang}
		rightParen = &token.Token{Kind: token.KindRightParen}
		onKw = &token.Token{Kind: token.KindName, Value: "on"}
		fieldLoc = &token.Token{Kind: token.KindName, Value: "FIELD"}
		pipe = &token.Token{Kind: token.KindPipe}
		inlineLoc = &token.Token{Kind: token.KindName, Value: "INLINE_FRAGMENT"}
		eof = &token.Token{Kind: token.KindEOF}

		chainTokens(sof, directiveKw, at, name, leftParen, argName, colon, typeName, bang,
			rightParen, onKw, fieldLoc, pipe, inlineLoc, eof)

		definition = &ast.DirectiveDefinition{
			Name: ast.Name{Token: name},
			Arguments: ast.InputValueDefinitionList{
				{
					Name: ast.Name{Token: argName},
					Type: ast.NonNullType{
						Type: ast.NamedType{
							Name: ast.Name{Token: typeName},
						},
					},
				},
			},
			Locations: []ast.Name{
				{Token: fieldLoc},
				{Token: inlineLoc},
			},
		}
	})

	It("starts at the directive keyword and ends at the last location", func() {
		r := definition.TokenRange()
		Expect(r.First).Should(BeIdenticalTo(directiveKw))
		Expect(r.Last).Should(BeIdenticalTo(inlineLoc))
	})

	It("starts at the description when one is given", func() {
		// """Skips the annotated element."""
		// directive @skip(if: Boolean!) on FIELD | INLINE_FRAGMENT
		descriptionToken := &token.Token{
			Kind:  token.KindBlockString,
			Value: "Skips the annotated element.",
			Prev:  sof,
			Next:  directiveKw,
		}
		sof.Next = descriptionToken
		directiveKw.Prev = descriptionToken

		definition.Description = ast.StringValue{Token: descriptionToken}
		Expect(definition.HasDescription()).Should(BeTrue())

		r := definition.TokenRange()
		Expect(r.First).Should(BeIdenticalTo(descriptionToken))
		Expect(r.Last).Should(BeIdenticalTo(inlineLoc))
	})

	It("encloses the arguments definition in parens", func() {
		Expect(definition.Arguments.FirstToken()).Should(BeIdenticalTo(leftParen))
		Expect(definition.Arguments.LastToken()).Should(BeIdenticalTo(rightParen))
	})

	It("spans each argument from its name to its type", func() {
		r := definition.Arguments[0].TokenRange()
		Expect(r.First).Should(BeIdenticalTo(argName))
		Expect(r.Last).Should(BeIdenticalTo(bang))
	})

	It("reaches the source for location info", func() {
		info := definition.TokenRange().First.LocationInfo()
		Expect(info.Name).Should(Equal("GraphQL request"))
	})
})

var _ = Describe("InputValueDefinition", func() {
	It("ends at the default value when one is given", func() {
		// reason: String = "No longer supported"
		var (
			name         = &token.Token{Kind: token.KindName, Value: "reason"}
			colon        = &token.Token{Kind: token.KindColon}
			typeName     = &token.Token{Kind: token.KindName, Value: "String"}
			equals       = &token.Token{Kind: token.KindEquals}
			defaultValue = &token.Token{Kind: token.KindString, Value: "No longer supported"}
		)
		chainTokens(name, colon, typeName, equals, defaultValue)

		definition := &ast.InputValueDefinition{
			Name: ast.Name{Token: name},
			Type: ast.NamedType{
				Name: ast.Name{Token: typeName},
			},
			DefaultValue: ast.StringValue{Token: defaultValue},
		}
		Expect(definition.HasDescription()).Should(BeFalse())

		r := definition.TokenRange()
		Expect(r.First).Should(BeIdenticalTo(name))
		Expect(r.Last).Should(BeIdenticalTo(defaultValue))
	})

	It("ends at the last directive when directives are given", func() {
		// first: Int @deprecated
		var (
			name          = &token.Token{Kind: token.KindName, Value: "first"}
			colon         = &token.Token{Kind: token.KindColon}
			typeName      = &token.Token{Kind: token.KindName, Value: "Int"}
			at            = &token.Token{Kind: token.KindAt}
			directiveName = &token.Token{Kind: token.KindName, Value: "deprecated"}
		)
		chainTokens(name, colon, typeName, at, directiveName)

		definition := &ast.InputValueDefinition{
			Name: ast.Name{Token: name},
			Type: ast.NamedType{
				Name: ast.Name{Token: typeName},
			},
			Directives: ast.Directives{
				{
					Name: ast.Name{Token: directiveName},
				},
			},
		}

		r := definition.TokenRange()
		Expect(r.First).Should(BeIdenticalTo(name))
		Expect(r.Last).Should(BeIdenticalTo(directiveName))
	})

	It("starts at the description when one is given", func() {
		// "Skipped when true." if: Boolean!
		var (
			description = &token.Token{Kind: token.KindString, Value: "Skipped when true."}
			name        = &token.Token{Kind: token.KindName, Value: "if"}
			colon       = &token.Token{Kind: token.KindColon}
			typeName    = &token.Token{Kind: token.KindName, Value: "Boolean"}
			bang        = &token.Token{Kind: token.KindBang}
		)
		chainTokens(description, name, colon, typeName, bang)

		definition := &ast.InputValueDefinition{
			Description: ast.StringValue{Token: description},
			Name:        ast.Name{Token: name},
			Type: ast.NonNullType{
				Type: ast.NamedType{
					Name: ast.Name{Token: typeName},
				},
			},
		}
		Expect(definition.HasDescription()).Should(BeTrue())

		r := definition.TokenRange()
		Expect(r.First).Should(BeIdenticalTo(description))
		Expect(r.Last).Should(BeIdenticalTo(bang))
	})
})
