/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Authors:
 *	- Sendu Bala <sb10@sanger.ac.uk>
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// Package naming holds the machinery shared by the SEGLH naming conventions: a
// declarative field table that is assembled in to one composite pattern, and a
// Record of validated field values built from that table.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// PathSeparator separates the directories of a path from the final name.
	PathSeparator = "/"

	// Separator is placed between fields of a name.
	Separator = "_"
)

// Field describes a single named slot of a structured name. The fields of a
// Grammar are given in the order they appear in a name.
type Field struct {
	// Name is the key the field is known by, eg. "libraryprep".
	Name string

	// Label is used in error messages, eg. "LibraryPrep name".
	Label string

	// Lead is the literal that precedes the field in a name, typically
	// Separator. The first field and any field directly appended (like a file
	// extension) have no Lead.
	Lead string

	// Capture is the loose sub-pattern used to find the field during
	// decomposition. It must not contain capturing groups.
	Capture string

	// Optional fields may be missing from a name during decomposition.
	Optional bool

	// Required fields must have a non-empty valid value.
	Required bool

	// Valid is the strict pattern a non-empty value must match.
	Valid *regexp.Regexp
}

// fragment returns the part of the composite pattern for this field.
func (f Field) fragment() string {
	frag := regexp.QuoteMeta(f.Lead) + "(" + f.Capture + ")"

	if f.Optional {
		return "(?:" + frag + ")?"
	}

	return frag
}

// validate checks the given value against this field's rules.
func (f Field) validate(value string) error {
	if value == "" {
		if f.Required {
			return &FieldError{Field: f.Name, Label: f.Label}
		}

		return nil
	}

	if !f.Valid.MatchString(value) {
		return &FieldError{Field: f.Name, Label: f.Label, Value: value}
	}

	return nil
}

// Grammar is the fixed, ordered field table of one kind of structured name,
// along with the composite pattern assembled from it.
type Grammar struct {
	fields  []Field
	index   map[string]int
	pattern *regexp.Regexp
}

// NewGrammar assembles the given fields in to a Grammar. It panics if the
// resulting composite pattern does not compile, or if field names repeat, since
// grammars are fixed at compile time.
func NewGrammar(fields ...Field) *Grammar {
	index := make(map[string]int, len(fields))

	var b strings.Builder

	b.WriteString("^")

	for i, f := range fields {
		if _, exists := index[f.Name]; exists {
			panic(fmt.Sprintf("naming: duplicate field %q", f.Name))
		}

		index[f.Name] = i

		b.WriteString(f.fragment())
	}

	b.WriteString("$")

	pattern := regexp.MustCompile(b.String())
	if pattern.NumSubexp() != len(fields) {
		panic(fmt.Sprintf("naming: pattern has %d groups for %d fields", pattern.NumSubexp(), len(fields)))
	}

	return &Grammar{
		fields:  fields,
		index:   index,
		pattern: pattern,
	}
}

// Fields returns the names of our fields, in order.
func (g *Grammar) Fields() []string {
	names := make([]string, len(g.fields))

	for i, f := range g.fields {
		names[i] = f.Name
	}

	return names
}

// Has tells you if the given field name is part of this Grammar.
func (g *Grammar) Has(field string) bool {
	_, ok := g.index[field]

	return ok
}

// Pattern returns the source text of the composite pattern.
func (g *Grammar) Pattern() string {
	return g.pattern.String()
}

// SplitPath splits the given full name on the final PathSeparator, returning
// the path before it (empty if there is none) and the name after it.
func SplitPath(fullname string) (string, string) {
	i := strings.LastIndex(fullname, PathSeparator)
	if i < 0 {
		return "", fullname
	}

	return fullname[:i], fullname[i+1:]
}

// JoinPath is the inverse of SplitPath.
func JoinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + PathSeparator + name
}

// Decompose splits off any path from fullname, then breaks the remaining name
// down in to its fields using the composite pattern. Field content is not
// validated. Fields that were absent have an empty value.
//
// If the name does not match, a *MalformedError is returned.
func (g *Grammar) Decompose(fullname string) (string, map[string]string, error) {
	path, name := SplitPath(fullname)

	m := g.pattern.FindStringSubmatch(name)
	if m == nil {
		return "", nil, &MalformedError{Name: name}
	}

	values := make(map[string]string, len(g.fields))

	for i, f := range g.fields {
		values[f.Name] = m[i+1]
	}

	return path, values, nil
}

// Validate checks value against the rules of the given field. It returns
// ErrUnknownField for fields not in this Grammar, or a *FieldError.
func (g *Grammar) Validate(field, value string) error {
	i, ok := g.index[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return g.fields[i].validate(value)
}
