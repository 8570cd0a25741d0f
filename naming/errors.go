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
	"fmt"
	"strings"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrUnknownField = Error("unknown field")

// MalformedError is returned when a name does not have the overall shape of
// its naming convention.
type MalformedError struct {
	Name string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("Wrong naming format (%s)", e.Name)
}

// FieldError is returned when a single field's value is not valid. Value is
// empty when a required field was missing.
type FieldError struct {
	Field string
	Label string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s invalid (%s)", e.Label, e.Value)
}

// FieldErrors collects the FieldError of every invalid field of a name.
type FieldErrors []*FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))

	for i, fe := range e {
		msgs[i] = fe.Error()
	}

	return strings.Join(msgs, ", ")
}

// Fields returns the names of the invalid fields.
func (e FieldErrors) Fields() []string {
	fields := make([]string, len(e))

	for i, fe := range e {
		fields[i] = fe.Field
	}

	return fields
}
