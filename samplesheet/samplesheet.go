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

package samplesheet

import "github.com/moka-guys/seglh-naming/naming"

// Samplesheet is a parsed and validated samplesheet name. Use Set() to change
// the value of a field.
type Samplesheet struct {
	*naming.Record
}

// Parse parses the given samplesheet name, which may have a path before it.
// All invalid fields are reported together in a naming.FieldErrors. If the
// name doesn't have the right shape at all, a *naming.MalformedError is
// returned.
func Parse(fullname string) (*Samplesheet, error) {
	rec, err := grammar.Parse(fullname)
	if err != nil {
		return nil, err
	}

	return &Samplesheet{Record: rec}, nil
}

// FromMap builds a Samplesheet from already known field values, keyed by the
// Field* constants. FieldPath may be included to give the samplesheet a path.
func FromMap(fields map[string]string) (*Samplesheet, error) {
	rec, err := grammar.NewRecord(fields[FieldPath], fields)
	if err != nil {
		return nil, err
	}

	return &Samplesheet{Record: rec}, nil
}

// String returns the samplesheet file name, without any path.
func (s *Samplesheet) String() string {
	return s.Join(joinedFields...) + s.FileExt()
}

// FullName returns the samplesheet file name with its path. For a parsed name
// this is identical to the input.
func (s *Samplesheet) FullName() string {
	return naming.JoinPath(s.Path(), s.String())
}

// Hash returns a stable hash of the samplesheet name, for obfuscating it.
func (s *Samplesheet) Hash() string {
	return naming.Hash(s.String())
}

// IsFile tells you if this samplesheet was parsed with a path.
func (s *Samplesheet) IsFile() bool {
	return s.Path() != ""
}

// Date is the 6 digit run date, eg. 211008.
func (s *Samplesheet) Date() string { return s.Get(FieldDate) }

// SequencerID is the upper case alphanumeric instrument identifier.
func (s *Samplesheet) SequencerID() string { return s.Get(FieldSequencerID) }

// AutoIncrNo is the 4 digit run number of the sequencer.
func (s *Samplesheet) AutoIncrNo() string { return s.Get(FieldAutoIncrNo) }

// FlowcellID is either 000000000-XXXXX or a 10 character code.
func (s *Samplesheet) FlowcellID() string { return s.Get(FieldFlowcellID) }

// SamplesheetStr is always "SampleSheet".
func (s *Samplesheet) SamplesheetStr() string { return s.Get(FieldSamplesheetStr) }

// FileExt is always ".csv".
func (s *Samplesheet) FileExt() string { return s.Get(FieldFileExt) }
