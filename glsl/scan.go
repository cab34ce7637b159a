// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glsl scans OpenGL shading language source text into tokens
// with line information and reflects the top-level interface
// declarations (uniform blocks, inputs, outputs, samplers) of a stage.
// It does not type check or evaluate anything.
package glsl

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Kinds are the coarse token classes used by the reflector.
type Kinds int32

const (
	// Word is an identifier or keyword.
	Word Kinds = iota

	// Number is an integer or floating point literal.
	Number

	// Punct is punctuation or an operator.
	Punct

	// Directive is a whole preprocessor line, such as #version 450 core.
	Directive
)

// Token is one significant token of the source.
type Token struct {
	Kind Kinds
	Text string

	// Line is the 0-based line of the token: the number of newline
	// characters that precede it in the source.
	Line int

	// Col is the 0-based byte column of the token within its line.
	Col int
}

// SyntaxError is a lexical or structural error at a source position.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

// Error returns the error in the compiler info log format
// 0:LINE(COLUMN): error: MESSAGE, with a 0-based LINE.
func (se *SyntaxError) Error() string {
	return fmt.Sprintf("0:%d(%d): error: %s", se.Line, se.Col+1, se.Msg)
}

var directives = map[string]bool{
	"version": true, "extension": true, "define": true, "undef": true,
	"if": true, "ifdef": true, "ifndef": true, "else": true, "elif": true,
	"endif": true, "line": true, "pragma": true, "error": true,
}

var closers = map[string]string{")": "(", "]": "[", "}": "{"}

// Scan splits src into significant tokens, dropping whitespace and comments.
// It returns a *SyntaxError for characters that are not part of the
// language, unknown preprocessor directives and unbalanced brackets.
func Scan(src string) ([]Token, error) {
	src = strings.TrimRight(src, "\x00")
	lexer := lexers.Get("glsl")
	if lexer == nil {
		return nil, fmt.Errorf("glsl.Scan: no GLSL lexer available")
	}
	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return nil, err
	}
	var toks []Token
	var open []Token
	lines := chroma.SplitTokensIntoLines(iterator.Tokens())
	for li, lt := range lines {
		col := 0
		for _, tok := range lt {
			val := strings.TrimSuffix(tok.Value, "\n")
			val = strings.TrimSuffix(val, "\r")
			tk := Token{Text: strings.TrimSpace(val), Line: li, Col: col}
			col += len(val)
			switch {
			case tok.Type == chroma.Error:
				return toks, &SyntaxError{Line: li, Col: tk.Col, Msg: fmt.Sprintf("syntax error, unexpected character %q", val)}
			case tok.Type == chroma.CommentPreproc:
				dir := strings.TrimSpace(strings.TrimPrefix(tk.Text, "#"))
				name, _, _ := strings.Cut(dir, " ")
				if name != "" && !directives[name] {
					return toks, &SyntaxError{Line: li, Col: tk.Col, Msg: fmt.Sprintf("unknown preprocessor directive #%s", name)}
				}
				tk.Kind = Directive
			case tok.Type.InCategory(chroma.Comment), tok.Type.InCategory(chroma.Text), tk.Text == "":
				continue
			case tok.Type.InSubCategory(chroma.LiteralNumber):
				tk.Kind = Number
			case tok.Type.InCategory(chroma.Keyword), tok.Type.InCategory(chroma.Name):
				tk.Kind = Word
			default:
				tk.Kind = Punct
			}
			if tk.Kind == Punct {
				switch tk.Text {
				case "(", "[", "{":
					open = append(open, tk)
				case ")", "]", "}":
					if len(open) == 0 || open[len(open)-1].Text != closers[tk.Text] {
						return toks, &SyntaxError{Line: li, Col: tk.Col, Msg: fmt.Sprintf("syntax error, unexpected '%s'", tk.Text)}
					}
					open = open[:len(open)-1]
				}
			}
			toks = append(toks, tk)
		}
	}
	if len(open) > 0 {
		last := open[len(open)-1]
		return toks, &SyntaxError{Line: strings.Count(src, "\n"), Col: 0, Msg: fmt.Sprintf("syntax error, unexpected end of file, unclosed '%s' from line %d", last.Text, last.Line)}
	}
	return toks, nil
}
