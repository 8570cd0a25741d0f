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
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/moka-guys/seglh-naming/naming"
	. "github.com/smartystreets/goconvey/convey"
)

var hexRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestSample(t *testing.T) {
	valid := []string{
		"NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1",
		"NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1_001",
		"NGS123_12_382398_JD_M_VCP0R33_Pan0000_RJZ_S12_R1",
		"NGS123_12_382398_JD_M_VCP0R33_Pan0000",
		"NGS123_12_382398_324123_VCP0R33_Pan0000_S12_R1",
		"NGS123_12_382398_JD_M_Pan0000_I1",
		"/path/to/NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1_001.fastq.gz",
	}

	Convey("Valid sample names can be parsed", t, func() {
		for _, name := range valid {
			s, err := Parse(name)
			So(err, ShouldBeNil)
			So(s, ShouldNotBeNil)
		}

		Convey("and their fields retrieved", func() {
			s, err := Parse("NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1")
			So(err, ShouldBeNil)
			So(s.LibraryPrep(), ShouldEqual, "NGS123")
			So(s.SampleCount(), ShouldEqual, "12")
			So(s.ID1(), ShouldEqual, "382398")
			So(s.ID2(), ShouldBeEmpty)
			So(s.Initials(), ShouldEqual, "JD")
			So(s.Sex(), ShouldEqual, "M")
			So(s.PanelName(), ShouldEqual, "VCP0R33")
			So(s.PanelNumber(), ShouldEqual, "Pan0000")
			So(s.ODS(), ShouldBeEmpty)
			So(s.SamplesheetIndex(), ShouldEqual, "S12")
			So(s.ReadNumber(), ShouldEqual, "R1")
			So(s.Stable(), ShouldBeEmpty)
			So(s.Rest(), ShouldBeEmpty)
			So(s.Path(), ShouldBeEmpty)
			So(s.IsFile(), ShouldBeFalse)
			So(s.Get(FieldPanelNumber), ShouldEqual, "Pan0000")
			So(s.String(), ShouldEqual, "NGS123_12_382398_JD_M_VCP0R33_Pan0000")

			s, err = Parse("NGS123_12_382398_324123_VCP0R33_Pan0000_RJZ_S12_R1_001")
			So(err, ShouldBeNil)
			So(s.ID2(), ShouldEqual, "324123")
			So(s.Initials(), ShouldBeEmpty)
			So(s.Sex(), ShouldBeEmpty)
			So(s.ODS(), ShouldEqual, "RJZ")
			So(s.Stable(), ShouldEqual, "001")
			So(s.String(), ShouldEqual, "NGS123_12_382398_324123_VCP0R33_Pan0000_RJZ")
		})

		Convey("and the full name reconstructs the input exactly", func() {
			for _, name := range valid {
				s, err := Parse(name)
				So(err, ShouldBeNil)
				So(s.FullName(), ShouldEqual, name)
			}
		})

		Convey("and the canonical form is a prefix of the name", func() {
			for _, name := range valid {
				s, err := Parse(name)
				So(err, ShouldBeNil)

				_, base := naming.SplitPath(name)
				So(strings.HasPrefix(base, s.String()), ShouldBeTrue)
			}
		})

		Convey("and hashed", func() {
			for _, name := range valid {
				s, err := Parse(name)
				So(err, ShouldBeNil)

				h := s.Hash()
				So(hexRegex.MatchString(h), ShouldBeTrue)
				So(h, ShouldNotEqual, s.String())
				So(s.Hash(), ShouldEqual, h)
			}

			a, err := Parse("NGS123_12_382398_JD_M_VCP0R33_Pan0000")
			So(err, ShouldBeNil)

			b, err := Parse("/some/path/NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1_001.bam")
			So(err, ShouldBeNil)
			So(b.Hash(), ShouldEqual, a.Hash())

			c, err := Parse("NGS123_12_382398_JD_F_VCP0R33_Pan0000")
			So(err, ShouldBeNil)
			So(c.Hash(), ShouldNotEqual, a.Hash())
		})
	})

	Convey("File names have paths and extensions", t, func() {
		s, err := Parse("/path/to/NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1_001.fastq.gz")
		So(err, ShouldBeNil)
		So(s.Path(), ShouldEqual, "/path/to")
		So(s.Rest(), ShouldEqual, ".fastq.gz")
		So(s.IsFile(), ShouldBeTrue)

		ext, err := s.FileExtension(true)
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "fastq.gz")

		ext, err = s.FileExtension(false)
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "fastq")

		s, err = Parse("NGS123_12_382398_JD_M_VCP0R33_Pan0000.re.xxx.vcf.gz")
		So(err, ShouldBeNil)
		So(s.IsFile(), ShouldBeTrue)

		ext, err = s.FileExtension(true)
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "vcf.gz")

		ext, err = s.FileExtension(false)
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "vcf")

		s, err = Parse("NGS123_12_382398_JD_M_VCP0R33_Pan0000.bam")
		So(err, ShouldBeNil)

		ext, err = s.FileExtension(true)
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "bam")

		s, err = Parse("NGS123_12_382398_JD_M_VCP0R33_Pan0000.gz")
		So(err, ShouldBeNil)

		ext, err = s.FileExtension(false)
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "gz")

		s, err = Parse("NGS123_12_382398_JD_M_VCP0R33_Pan0000.longname.zip")
		So(err, ShouldBeNil)

		ext, err = s.FileExtension(true)
		So(err, ShouldBeNil)
		So(ext, ShouldEqual, "zip")

		Convey("but plain names have no extension", func() {
			s, err := Parse("NGS123_12_382398_JD_M_VCP0R33_Pan0000")
			So(err, ShouldBeNil)
			So(s.IsFile(), ShouldBeFalse)

			_, err = s.FileExtension(true)
			So(errors.Is(err, ErrNotAFile), ShouldBeTrue)
		})
	})

	Convey("Invalid sample names fail to parse", t, func() {
		Convey("when they don't have the right shape", func() {
			for _, name := range []string{
				"NGS123_12_382398_PT324B_Pn0000_S12_R1",
				"NGS123_12_382398_JD_M_VCP0R33",
				"",
			} {
				s, err := Parse(name)
				So(s, ShouldBeNil)

				var me *naming.MalformedError
				So(errors.As(err, &me), ShouldBeTrue)
			}

			_, err := Parse("/p/NGS123_12_382398_PT324B_Pn0000_S12_R1")
			So(err.Error(), ShouldEqual, "Wrong naming format (NGS123_12_382398_PT324B_Pn0000_S12_R1)")
		})

		Convey("when a field is invalid", func() {
			for name, field := range map[string]string{
				"NGS123_12_382398_JD_M_VCP0R33_Pan000a_S12_R1":     FieldPanelNumber,
				"NGS123_12_382398_JD_X_VCP0R33_Pan0000":            FieldSex,
				"ngs123_12_382398_JD_M_VCP0R33_Pan0000":            FieldLibraryPrep,
				"NGS123_12_382398_Jd_M_VCP0R33_Pan0000":            FieldInitials,
				"NGS123_12_382398_1234_VCP0R33_Pan0000":            FieldID2,
				"NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1_002": FieldStable,
				"NGS123_12_382398_JD_M_VCP0R33_Pan0000.vcf-gz":     FieldRest,
				"NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12 R1":     FieldRest,
			} {
				s, err := Parse(name)
				So(s, ShouldBeNil)

				var fe naming.FieldErrors
				So(errors.As(err, &fe), ShouldBeTrue)
				So(fe.Fields(), ShouldResemble, []string{field})
			}
		})

		Convey("with every invalid field reported", func() {
			_, err := Parse("NG123_1_38239_JD_M_VCP_Pan0000")

			var fe naming.FieldErrors
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Fields(), ShouldResemble, []string{FieldLibraryPrep, FieldSampleCount, FieldID1, FieldPanelName})
			So(err.Error(), ShouldEqual, "LibraryPrep name invalid (NG123), SampleCount invalid (1), "+
				"Specimen/DNA number invalid (38239), Panel Name invalid (VCP)")
		})

		Convey("when there are not enough identifiers", func() {
			for _, name := range []string{
				"NGS123_12_382398_VCP0R33_Pan0000",
				"NGS123_12_382398_Pan0000_S12_R1",
				"NGS123_12_382398_JD_VCP0R33_Pan0000",
			} {
				_, err := Parse(name)
				So(err, ShouldEqual, ErrNotEnoughIdentifiers)
			}

			_, err := Parse("NGS123_12_382398_12345_Pan0000")
			So(err, ShouldBeNil)

			_, err = Parse("NGS123_12_382398_JD_M_Pan0000")
			So(err, ShouldBeNil)
		})

		Convey("when TSO names are too long", func() {
			s, err := Parse("TSO22001_01_123456_JD_M_ABCDEFGH_Pan4000")
			So(err, ShouldBeNil)
			So(len(s.String()), ShouldEqual, tsoMaxLength)

			_, err = Parse("TSO22001_01_123456_JD_M_ABCDEFGHIJ_Pan4000")
			So(err, ShouldEqual, ErrTSOTooLong)

			_, err = Parse("NGS22001_01_123456_JD_M_ABCDEFGHIJKLMNOPQRSTUVWXYZ_Pan4000")
			So(err, ShouldBeNil)
		})
	})

	Convey("Fields of a parsed sample can be modified", t, func() {
		name := "NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1"
		s, err := Parse(name)
		So(err, ShouldBeNil)
		So(s.IsModified(), ShouldBeFalse)

		err = s.Set(FieldID1, "0101010101")
		So(err, ShouldBeNil)
		So(s.ID1(), ShouldEqual, "0101010101")
		So(s.IsModified(), ShouldBeTrue)
		So(s.String(), ShouldEqual, "NGS123_12_0101010101_JD_M_VCP0R33_Pan0000")

		err = s.Set(FieldID1, "382398")
		So(err, ShouldBeNil)
		So(s.FullName(), ShouldEqual, name)
		So(s.IsModified(), ShouldBeTrue)

		Convey("but only to valid values", func() {
			s, err := Parse(name)
			So(err, ShouldBeNil)

			err = s.Set(FieldSex, "X")

			var fe *naming.FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Field, ShouldEqual, FieldSex)
			So(err.Error(), ShouldEqual, "Sex invalid (X)")
			So(s.Sex(), ShouldEqual, "M")
			So(s.IsModified(), ShouldBeFalse)

			err = s.Set(FieldPanelNumber, "")
			So(err, ShouldNotBeNil)
			So(s.PanelNumber(), ShouldEqual, "Pan0000")

			err = s.Set("foo", "bar")
			So(errors.Is(err, naming.ErrUnknownField), ShouldBeTrue)
		})

		Convey("and optional fields can be removed", func() {
			s, err := Parse(name)
			So(err, ShouldBeNil)

			err = s.Set(FieldPanelName, "")
			So(err, ShouldBeNil)
			So(s.String(), ShouldEqual, "NGS123_12_382398_JD_M_Pan0000")
			So(s.FullName(), ShouldEqual, "NGS123_12_382398_JD_M_Pan0000_S12_R1")
		})
	})

	Convey("Samples can be built from a map of fields", t, func() {
		s, err := FromMap(map[string]string{
			FieldLibraryPrep: "NGS123",
			FieldSampleCount: "12",
			FieldID1:         "382398",
			FieldInitials:    "JD",
			FieldSex:         "M",
			FieldPanelNumber: "Pan0000",
			FieldRest:        ".bam",
			FieldPath:        "/a/b",
			"unknown": "ignored",
		})
		So(err, ShouldBeNil)
		So(s.String(), ShouldEqual, "NGS123_12_382398_JD_M_Pan0000")
		So(s.FullName(), ShouldEqual, "/a/b/NGS123_12_382398_JD_M_Pan0000.bam")
		So(s.Path(), ShouldEqual, "/a/b")
		So(s.IsFile(), ShouldBeTrue)
		So(s.IsModified(), ShouldBeFalse)

		Convey("which must include the required fields", func() {
			_, err := FromMap(map[string]string{FieldInitials: "JD", FieldSex: "M"})

			var fe naming.FieldErrors
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Fields(), ShouldResemble, []string{FieldLibraryPrep, FieldSampleCount, FieldID1, FieldPanelNumber})
			So(fe[0].Error(), ShouldEqual, "LibraryPrep name invalid ()")
		})

		Convey("which must have enough identifiers", func() {
			_, err := FromMap(map[string]string{
				FieldLibraryPrep: "NGS123",
				FieldSampleCount: "12",
				FieldID1:         "382398",
				FieldPanelNumber: "Pan0000",
			})
			So(err, ShouldEqual, ErrNotEnoughIdentifiers)
		})
	})

	Convey("Fields() lists fields in order", t, func() {
		So(Fields(), ShouldResemble, []string{
			FieldLibraryPrep, FieldSampleCount, FieldID1, FieldID2, FieldInitials, FieldSex,
			FieldPanelName, FieldPanelNumber, FieldODS, FieldSamplesheetIndex, FieldReadNumber,
			FieldStable, FieldRest,
		})
	})
}
