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

// Package sample parses, validates and builds SEGLH sample names, such as
// NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1_001.fastq.gz.
package sample

import (
	"regexp"

	"github.com/moka-guys/seglh-naming/naming"
)

// Field names, in the order they appear in a sample name.
const (
	FieldLibraryPrep      = "libraryprep"
	FieldSampleCount      = "samplecount"
	FieldID1              = "id1"
	FieldID2              = "id2"
	FieldInitials         = "initials"
	FieldSex              = "sex"
	FieldPanelName        = "panelname"
	FieldPanelNumber      = "panelnumber"
	FieldODS              = "ods"
	FieldSamplesheetIndex = "samplesheetindex"
	FieldReadNumber       = "readnumber"
	FieldStable           = "stable"
	FieldRest             = "rest"

	// FieldPath is the key for the path when building from a map.
	FieldPath = "path"
)

var grammar = naming.NewGrammar(
	naming.Field{
		Name:     FieldLibraryPrep,
		Label:    "LibraryPrep name",
		Capture:  `[^_]+`,
		Required: true,
		Valid:    regexp.MustCompile(`^[A-Z]{3,}\d+[a-zA-Z0-9]*$`),
	},
	naming.Field{
		Name:     FieldSampleCount,
		Label:    "SampleCount",
		Lead:     naming.Separator,
		Capture:  `\d+`,
		Required: true,
		Valid:    regexp.MustCompile(`^\d{2}$`),
	},
	naming.Field{
		Name:     FieldID1,
		Label:    "Specimen/DNA number",
		Lead:     naming.Separator,
		Capture:  `\d[^_]+`,
		Required: true,
		Valid:    regexp.MustCompile(`^\d{6,}$`),
	},
	naming.Field{
		Name:     FieldID2,
		Label:    "Secondary identifier",
		Lead:     naming.Separator,
		Capture:  `\d[^_]+`,
		Optional: true,
		Valid:    regexp.MustCompile(`^[a-zA-Z0-9-]{5,}$`),
	},
	naming.Field{
		Name:     FieldInitials,
		Label:    "Initials",
		Lead:     naming.Separator,
		Capture:  `[^_]{2}`,
		Optional: true,
		Valid:    regexp.MustCompile(`^[A-Z]{2}$`),
	},
	naming.Field{
		Name:     FieldSex,
		Label:    "Sex",
		Lead:     naming.Separator,
		Capture:  `[A-Za-z]`,
		Optional: true,
		Valid:    regexp.MustCompile(`^[MFU]$`),
	},
	naming.Field{
		Name:     FieldPanelName,
		Label:    "Panel Name",
		Lead:     naming.Separator,
		Capture:  `[^_]+`,
		Optional: true,
		Valid:    regexp.MustCompile(`^[a-zA-Z0-9]{4,}$`),
	},
	naming.Field{
		Name:     FieldPanelNumber,
		Label:    "Pan Number",
		Lead:     naming.Separator,
		Capture:  `Pan[^_.]*`,
		Required: true,
		Valid:    regexp.MustCompile(`^Pan\d{2,}$`),
	},
	naming.Field{
		Name:     FieldODS,
		Label:    "ODS code",
		Lead:     naming.Separator,
		Capture:  `R[A-Z0-9]{2}`,
		Optional: true,
		Valid:    regexp.MustCompile(`^R[A-Z0-9]{2}$`),
	},
	naming.Field{
		Name:     FieldSamplesheetIndex,
		Label:    "Samplesheet index",
		Lead:     naming.Separator,
		Capture:  `S\d+`,
		Optional: true,
		Valid:    regexp.MustCompile(`^S\d+$`),
	},
	naming.Field{
		Name:     FieldReadNumber,
		Label:    "Readnumber",
		Lead:     naming.Separator,
		Capture:  `[RI]\d`,
		Optional: true,
		Valid:    regexp.MustCompile(`^[RI]\d$`),
	},
	naming.Field{
		Name:     FieldStable,
		Label:    "Stable number",
		Lead:     naming.Separator,
		Capture:  `[0-9]{3}`,
		Optional: true,
		Valid:    regexp.MustCompile(`^001$`),
	},
	naming.Field{
		Name:    FieldRest,
		Label:   "Remainder of name",
		Capture: `.*`,
		Valid:   regexp.MustCompile(`^[\w.]*$`),
	},
)

// shortFields make up the canonical form of a sample name.
var shortFields = []string{
	FieldLibraryPrep,
	FieldSampleCount,
	FieldID1,
	FieldID2,
	FieldInitials,
	FieldSex,
	FieldPanelName,
	FieldPanelNumber,
	FieldODS,
}

// fullFields are joined with Separator before rest is appended in the full
// form.
var fullFields = append(append([]string{}, shortFields...),
	FieldSamplesheetIndex,
	FieldReadNumber,
	FieldStable,
)

// Fields returns the names of the fields of a sample name, in order.
func Fields() []string {
	return grammar.Fields()
}
