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

package token

import (
	"fmt"
)

// Kind classifies the lexical tokens of a GraphQL document.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Appendix-Grammar-Summary.Lexical-Tokens.
type Kind int

// All token kinds. The zero value is not a valid kind; kindStrings below spells out what each kind
// stands for.
const (
	KindSOF Kind = iota + 1
	KindEOF
	KindBang
	KindDollar
	KindAmp
	KindLeftParen
	KindRightParen
	KindSpread
	KindColon
	KindEquals
	KindAt
	KindLeftBracket
	KindRightBracket
	KindLeftBrace
	KindPipe
	KindRightBrace
	KindName
	KindInt
	KindFloat
	KindString
	KindBlockString
	KindComment
)

// kindStrings maps a punctuator kind to its punctuator and any other kind to its name.
var kindStrings = [...]string{
	KindSOF:          "<SOF>",
	KindEOF:          "<EOF>",
	KindBang:         "!",
	KindDollar:       "$",
	KindAmp:          "&",
	KindLeftParen:    "(",
	KindRightParen:   ")",
	KindSpread:       "...",
	KindColon:        ":",
	KindEquals:       "=",
	KindAt:           "@",
	KindLeftBracket:  "[",
	KindRightBracket: "]",
	KindLeftBrace:    "{",
	KindPipe:         "|",
	KindRightBrace:   "}",
	KindName:         "Name",
	KindInt:          "Int",
	KindFloat:        "Float",
	KindString:       "String",
	KindBlockString:  "BlockString",
	KindComment:      "Comment",
}

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	if kind > 0 && int(kind) < len(kindStrings) {
		return kindStrings[kind]
	}
	panic("unsupported token kind")
}

// Token is one lexical token in a Source, covering the byte range [Location, Location+Length).
type Token struct {
	Kind Kind

	// Where the token begins in the source
	Location SourceLocation

	// How many bytes the token spans in the source
	Length uint

	// The interpreted value of the token; empty for punctuators and comments
	Value string

	// All tokens of a source, ignored ones included, chain up in a doubly linked list which starts
	// at an <SOF> token and ends at an <EOF> one.
	Prev *Token
	Next *Token

	// source is only set on the <SOF> token (see NewSOFToken). Tokens chained after it reach the
	// source by walking Prev.
	source *Source
}

// NewSOFToken creates a <SOF> token that starts a token list for the given source. Tokens appended
// after it find the source with Source.
func NewSOFToken(source *Source) *Token {
	return &Token{
		Kind:   KindSOF,
		source: source,
	}
}

// Source returns the Source that contains the token.
func (token *Token) Source() *Source {
	for token.Prev != nil {
		token = token.Prev
	}
	return token.source
}

// LocationInfo resolves the token's location into the source name and line and column numbers.
func (token *Token) LocationInfo() SourceLocationInfo {
	return token.Source().LocationInfoOf(token.Location)
}

// Description renders the token for error messages and debug output.
func (token *Token) Description() string {
	if len(token.Value) > 0 {
		return fmt.Sprintf(`%s "%s"`, token.Kind.String(), token.Value)
	}
	return token.Kind.String()
}

// Range is the consecutive run of tokens [First, Last] in a token list.
type Range struct {
	First *Token
	Last  *Token
}
