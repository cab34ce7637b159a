// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glsl

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Layout holds the qualifiers of a layout(...) list that were given a
// value, such as location = 0 or binding = 2, and the flags that were
// not, such as std140.
type Layout struct {
	Values map[string]int
	Flags  []string
}

// Get returns the value of the named qualifier and whether it was declared.
func (ly *Layout) Get(name string) (int, bool) {
	if ly == nil || ly.Values == nil {
		return 0, false
	}
	v, ok := ly.Values[name]
	return v, ok
}

// Has reports whether the layout contains the named flag.
func (ly *Layout) Has(flag string) bool {
	return ly != nil && slices.Contains(ly.Flags, flag)
}

// Var is a declared variable: a stage input or output, an opaque uniform
// such as a sampler, or a member of a uniform block.
type Var struct {
	Name   string
	Type   string
	Layout Layout

	// Line is the 0-based source line of the declaration.
	Line int
}

// Location returns the declared location of the variable, or -1.
func (vr *Var) Location() int {
	if loc, ok := vr.Layout.Get("location"); ok {
		return loc
	}
	return -1
}

// Block is a uniform block declaration.
type Block struct {
	Name    string
	Layout  Layout
	Members []Var

	// Instance is the optional instance name following the block.
	Instance string
	Line     int
}

// Binding returns the binding point declared on the block, if any.
func (bl *Block) Binding() (int, bool) {
	return bl.Layout.Get("binding")
}

// Interface is the set of top-level declarations of one shader stage.
type Interface struct {
	// Version is the text following #version.
	Version  string
	Inputs   []Var
	Outputs  []Var
	Uniforms []Var
	Blocks   []Block
}

// BlockByName returns the uniform block of the given name, or nil.
func (si *Interface) BlockByName(name string) *Block {
	for i := range si.Blocks {
		if si.Blocks[i].Name == name {
			return &si.Blocks[i]
		}
	}
	return nil
}

// Samplers returns the uniforms of an opaque sampler type.
func (si *Interface) Samplers() []Var {
	var sm []Var
	for _, u := range si.Uniforms {
		if strings.HasPrefix(u.Type, "sampler") {
			sm = append(sm, u)
		}
	}
	return sm
}

// Reflect scans src and returns its top-level interface declarations.
// Function bodies and struct definitions are skipped. Any scan error is
// returned as is.
func Reflect(src string) (*Interface, error) {
	toks, err := Scan(src)
	if err != nil {
		return nil, err
	}
	rf := &reflector{toks: toks, si: &Interface{}}
	if err := rf.run(); err != nil {
		return nil, err
	}
	return rf.si, nil
}

type reflector struct {
	toks []Token
	pos  int
	si   *Interface
}

func (rf *reflector) run() error {
	var decl []Token
	for rf.pos < len(rf.toks) {
		tk := rf.toks[rf.pos]
		rf.pos++
		switch {
		case tk.Kind == Directive:
			if v, ok := strings.CutPrefix(tk.Text, "#version"); ok {
				rf.si.Version = strings.TrimSpace(v)
			}
		case tk.Kind == Punct && tk.Text == ";":
			if err := rf.variable(decl); err != nil {
				return err
			}
			decl = nil
		case tk.Kind == Punct && tk.Text == "{":
			if hasWord(decl, "uniform") {
				if err := rf.block(decl); err != nil {
					return err
				}
			} else {
				rf.skipBody()
			}
			decl = nil
		default:
			decl = append(decl, tk)
		}
	}
	return nil
}

// skipBody advances past the closing brace matching an already consumed '{'.
func (rf *reflector) skipBody() {
	depth := 1
	for rf.pos < len(rf.toks) && depth > 0 {
		switch rf.toks[rf.pos].Text {
		case "{":
			depth++
		case "}":
			depth--
		}
		rf.pos++
	}
	// a struct definition may be followed by declarators up to ';'
	if rf.pos < len(rf.toks) && rf.toks[rf.pos].Text == ";" {
		rf.pos++
	}
}

// block parses the members of a uniform block whose opening '{' has been
// consumed, and the optional instance name that follows it.
func (rf *reflector) block(decl []Token) error {
	ly, rest, err := parseLayout(decl)
	if err != nil {
		return err
	}
	if len(rest) == 0 || rest[len(rest)-1].Kind != Word {
		return errorAt(decl[0], "uniform block has no name")
	}
	name := rest[len(rest)-1]
	bl := Block{Name: name.Text, Layout: ly, Line: name.Line}
	var member []Token
	for rf.pos < len(rf.toks) {
		tk := rf.toks[rf.pos]
		rf.pos++
		if tk.Text == "}" {
			break
		}
		if tk.Text != ";" {
			member = append(member, tk)
			continue
		}
		mly, mrest, err := parseLayout(member)
		if err != nil {
			return err
		}
		if vr, ok := declarator(mrest); ok {
			vr.Layout = mly
			bl.Members = append(bl.Members, vr)
		}
		member = nil
	}
	for rf.pos < len(rf.toks) {
		tk := rf.toks[rf.pos]
		rf.pos++
		if tk.Text == ";" {
			break
		}
		if tk.Kind == Word && bl.Instance == "" {
			bl.Instance = tk.Text
		}
	}
	rf.si.Blocks = append(rf.si.Blocks, bl)
	return nil
}

// variable records a ';' terminated top-level declaration when it is a
// stage input, output or uniform.
func (rf *reflector) variable(decl []Token) error {
	if len(decl) == 0 {
		return nil
	}
	ly, rest, err := parseLayout(decl)
	if err != nil {
		return err
	}
	storage := ""
	for i, tk := range rest {
		if tk.Kind != Word {
			break
		}
		switch tk.Text {
		case "in", "out", "uniform":
			storage = tk.Text
			rest = rest[i+1:]
		case "const", "inout":
			return nil
		default:
			continue
		}
		break
	}
	if storage == "" {
		return nil
	}
	vr, ok := declarator(rest)
	if !ok {
		return errorAt(decl[len(decl)-1], "incomplete declaration")
	}
	vr.Layout = ly
	switch storage {
	case "in":
		rf.si.Inputs = append(rf.si.Inputs, vr)
	case "out":
		rf.si.Outputs = append(rf.si.Outputs, vr)
	case "uniform":
		rf.si.Uniforms = append(rf.si.Uniforms, vr)
	}
	return nil
}

// declarator extracts the type and name from [qualifiers...] type name [array].
func declarator(toks []Token) (Var, bool) {
	end := len(toks)
	for i, tk := range toks {
		if tk.Text == "[" || tk.Text == "=" {
			end = i
			break
		}
	}
	toks = toks[:end]
	if len(toks) < 2 {
		return Var{}, false
	}
	name := toks[len(toks)-1]
	typ := toks[len(toks)-2]
	if name.Kind != Word || typ.Kind != Word {
		return Var{}, false
	}
	return Var{Name: name.Text, Type: typ.Text, Line: name.Line}, true
}

// parseLayout removes a leading layout(...) qualifier from toks, if present,
// and returns its contents.
func parseLayout(toks []Token) (Layout, []Token, error) {
	ly := Layout{}
	i := slices.IndexFunc(toks, func(tk Token) bool { return tk.Text == "layout" })
	if i < 0 {
		return ly, toks, nil
	}
	if i+1 >= len(toks) || toks[i+1].Text != "(" {
		return ly, nil, errorAt(toks[i], "syntax error, expected '(' after layout")
	}
	j := i + 2
	var item []Token
	flush := func() error {
		switch len(item) {
		case 0:
		case 1:
			ly.Flags = append(ly.Flags, item[0].Text)
		case 3:
			if item[1].Text != "=" {
				return errorAt(item[1], "syntax error, expected '=' in layout qualifier")
			}
			v, err := strconv.ParseInt(item[2].Text, 0, 32)
			if err != nil {
				return errorAt(item[2], fmt.Sprintf("invalid layout qualifier value %q", item[2].Text))
			}
			if ly.Values == nil {
				ly.Values = map[string]int{}
			}
			ly.Values[item[0].Text] = int(v)
		default:
			return errorAt(item[0], "syntax error in layout qualifier")
		}
		item = nil
		return nil
	}
	for ; j < len(toks); j++ {
		tk := toks[j]
		if tk.Text == ")" || tk.Text == "," {
			if err := flush(); err != nil {
				return ly, nil, err
			}
			if tk.Text == ")" {
				break
			}
			continue
		}
		item = append(item, tk)
	}
	if j >= len(toks) {
		return ly, nil, errorAt(toks[i], "syntax error, unterminated layout qualifier")
	}
	rest := append(append([]Token(nil), toks[:i]...), toks[j+1:]...)
	return ly, rest, nil
}

func hasWord(toks []Token, w string) bool {
	return slices.ContainsFunc(toks, func(tk Token) bool { return tk.Kind == Word && tk.Text == w })
}

func errorAt(tk Token, msg string) error {
	return &SyntaxError{Line: tk.Line, Col: tk.Col, Msg: msg}
}
