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

package sample

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/moka-guys/seglh-naming/naming"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNotEnoughIdentifiers = Error("Not enough identifiers in sample name")
	ErrTSOTooLong           = Error("TSO sample name too long")
	ErrNotAFile             = Error("Not a file name")

	tsoPrefix    = "TSO"
	tsoMaxLength = 40
	extSeparator = "."
)

var (
	compressionExts = map[string]bool{"gz": true, "zip": true, "bz2": true, "zx": true}
	innerExtRegex   = regexp.MustCompile(`^\w{2,5}$`)
)

// Sample is a parsed and validated sample name. Use Set() to change the value
// of a field.
type Sample struct {
	*naming.Record
}

// Parse parses the given sample name, which may be a file name with a path
// before it. Every field is validated, and all invalid fields are reported
// together in a naming.FieldErrors. If the name doesn't have the right shape
// at all, a *naming.MalformedError is returned. Once the fields are valid, the
// name must have enough identifiers and TSO names must not be too long.
func Parse(fullname string) (*Sample, error) {
	rec, err := grammar.Parse(fullname)
	if err != nil {
		return nil, err
	}

	return newSample(rec)
}

// FromMap builds a Sample from already known field values, keyed by the Field*
// constants. FieldPath may be included to give the sample a path. Unknown keys
// are ignored and missing keys are treated as absent.
func FromMap(fields map[string]string) (*Sample, error) {
	rec, err := grammar.NewRecord(fields[FieldPath], fields)
	if err != nil {
		return nil, err
	}

	return newSample(rec)
}

func newSample(rec *naming.Record) (*Sample, error) {
	s := &Sample{Record: rec}

	if err := s.checkRequirements(); err != nil {
		return nil, err
	}

	return s, nil
}

// checkRequirements checks there are 2 patient identifiers, ie. id1 and either
// id2 or both initials and sex, and that TSO names are no longer than
// tsoMaxLength.
func (s *Sample) checkRequirements() error {
	enough := s.ID1() != "" && (s.ID2() != "" || (s.Initials() != "" && s.Sex() != ""))
	if !enough {
		return ErrNotEnoughIdentifiers
	}

	if strings.HasPrefix(s.LibraryPrep(), tsoPrefix) && len(s.String()) > tsoMaxLength {
		return ErrTSOTooLong
	}

	return nil
}

// String returns the canonical form of the sample name, which excludes any
// demultiplexing additions, the rest of a file name and the path.
func (s *Sample) String() string {
	return s.Join(shortFields...)
}

// FullName returns the complete name, including demultiplexing fields, the
// rest of any file name and the path. For a parsed name this is identical to
// the input.
func (s *Sample) FullName() string {
	return naming.JoinPath(s.Path(), s.Join(fullFields...)+s.Rest())
}

// FileExtension returns the extension of the file name this sample was parsed
// from. For compressed files like .vcf.gz, the extension includes the
// compression suffix if includeCompression is true, otherwise it is just the
// inner extension (vcf). Returns ErrNotAFile if there was nothing after the
// sample name.
func (s *Sample) FileExtension(includeCompression bool) (string, error) {
	rest := s.Rest()
	if rest == "" {
		return "", fmt.Errorf("%w (%s)", ErrNotAFile, s.FullName())
	}

	parts := strings.Split(rest, extSeparator)
	last := parts[len(parts)-1]

	if len(parts) < 2 || !compressionExts[last] {
		return last, nil
	}

	inner := parts[len(parts)-2]
	if !innerExtRegex.MatchString(inner) {
		return last, nil
	}

	if includeCompression {
		return inner + extSeparator + last, nil
	}

	return inner, nil
}

// Hash returns a stable hash of the canonical form, for obfuscating the sample
// name.
func (s *Sample) Hash() string {
	return naming.Hash(s.String())
}

// IsFile tells you if this sample was parsed from a file name or path.
func (s *Sample) IsFile() bool {
	return s.Rest() != "" || s.Path() != ""
}

// LibraryPrep is a 3+ upper case letter code followed by a number and an
// optional alphanumeric postfix, eg. NGS123 or ONC45rep.
func (s *Sample) LibraryPrep() string { return s.Get(FieldLibraryPrep) }

// SampleCount is the 2 digit index of the sample in the library prep.
func (s *Sample) SampleCount() string { return s.Get(FieldSampleCount) }

// ID1 is the specimen or DNA number.
func (s *Sample) ID1() string { return s.Get(FieldID1) }

// ID2 is the secondary patient, specimen or DNA identifier.
func (s *Sample) ID2() string { return s.Get(FieldID2) }

// Initials are the patient's 2 initials.
func (s *Sample) Initials() string { return s.Get(FieldInitials) }

// Sex is M, F or U.
func (s *Sample) Sex() string { return s.Get(FieldSex) }

// PanelName is the human readable panel name.
func (s *Sample) PanelName() string { return s.Get(FieldPanelName) }

// PanelNumber is the routing number, digits prefixed by Pan.
func (s *Sample) PanelNumber() string { return s.Get(FieldPanelNumber) }

// ODS is the organisation code.
func (s *Sample) ODS() string { return s.Get(FieldODS) }

// SamplesheetIndex is the demultiplexing index, digits prefixed by S.
func (s *Sample) SamplesheetIndex() string { return s.Get(FieldSamplesheetIndex) }

// ReadNumber is the read in a pair, a digit prefixed by R or I.
func (s *Sample) ReadNumber() string { return s.Get(FieldReadNumber) }

// Stable is the demultiplexing stable number, 001.
func (s *Sample) Stable() string { return s.Get(FieldStable) }

// Rest is whatever followed the sample name, eg. a file extension.
func (s *Sample) Rest() string { return s.Get(FieldRest) }
