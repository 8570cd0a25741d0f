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

package naming

import (
	"errors"
	"strings"
)

// Record holds the validated field values of one structured name.
type Record struct {
	grammar  *Grammar
	path     string
	values   []string
	modified bool
}

// NewRecord validates every field in values against the Grammar and returns a
// Record holding them. Keys of values that are not fields are ignored and
// fields missing from values are treated as absent.
//
// All invalid fields are reported together as FieldErrors, in field order.
func (g *Grammar) NewRecord(path string, values map[string]string) (*Record, error) {
	r := &Record{
		grammar: g,
		path:    path,
		values:  make([]string, len(g.fields)),
	}

	var errs FieldErrors

	for i, f := range g.fields {
		v := values[f.Name]

		if err := f.validate(v); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				errs = append(errs, fe)
			}

			continue
		}

		r.values[i] = v
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return r, nil
}

// Parse is a convenience that calls Decompose() on fullname and passes the
// result to NewRecord().
func (g *Grammar) Parse(fullname string) (*Record, error) {
	path, values, err := g.Decompose(fullname)
	if err != nil {
		return nil, err
	}

	return g.NewRecord(path, values)
}

// Path returns the directory part of the name this Record was parsed from, or
// the "path" given when built from values.
func (r *Record) Path() string {
	return r.path
}

// Get returns the value of the given field, or empty string if it was absent
// or is not one of our fields.
func (r *Record) Get(field string) string {
	i, ok := r.grammar.index[field]
	if !ok {
		return ""
	}

	return r.values[i]
}

// Set validates value for the given field, and if valid, stores it and marks
// this Record as modified. Other fields are left alone, and no whole-record
// checks are carried out.
func (r *Record) Set(field, value string) error {
	if err := r.grammar.Validate(field, value); err != nil {
		return err
	}

	r.values[r.grammar.index[field]] = value
	r.modified = true

	return nil
}

// IsModified tells you if any field has been Set() since construction, even if
// it was set back to its original value.
func (r *Record) IsModified() bool {
	return r.modified
}

// Values returns a map of field name to value for every field, including
// absent ones with an empty value.
func (r *Record) Values() map[string]string {
	values := make(map[string]string, len(r.values))

	for i, f := range r.grammar.fields {
		values[f.Name] = r.values[i]
	}

	return values
}

// Join joins the non-empty values of the given fields with Separator.
func (r *Record) Join(fields ...string) string {
	parts := make([]string, 0, len(fields))

	for _, field := range fields {
		if v := r.Get(field); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, Separator)
}
