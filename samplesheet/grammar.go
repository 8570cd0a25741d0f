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

// Package samplesheet parses, validates and builds SEGLH samplesheet names,
// such as 211008_A01229_0040_AHKGTFDRXY_SampleSheet.csv.
package samplesheet

import (
	"regexp"

	"github.com/moka-guys/seglh-naming/naming"
)

// Field names, in the order they appear in a samplesheet name.
const (
	FieldDate           = "date"
	FieldSequencerID    = "sequencerid"
	FieldAutoIncrNo     = "autoincrno"
	FieldFlowcellID     = "flowcellid"
	FieldSamplesheetStr = "samplesheetstr"
	FieldFileExt        = "fileext"

	// FieldPath is the key for the path when building from a map.
	FieldPath = "path"
)

var grammar = naming.NewGrammar(
	naming.Field{
		Name:     FieldDate,
		Label:    "Date",
		Capture:  `\d+`,
		Required: true,
		Valid:    regexp.MustCompile(`^\d{6}$`),
	},
	naming.Field{
		Name:     FieldSequencerID,
		Label:    "Sequencer ID",
		Lead:     naming.Separator,
		Capture:  `[^_]+`,
		Required: true,
		Valid:    regexp.MustCompile(`^[A-Z0-9]+$`),
	},
	naming.Field{
		Name:     FieldAutoIncrNo,
		Label:    "Autoincrementing number",
		Lead:     naming.Separator,
		Capture:  `\d+`,
		Required: true,
		Valid:    regexp.MustCompile(`^\d{4}$`),
	},
	naming.Field{
		Name:     FieldFlowcellID,
		Label:    "Flowcell ID",
		Lead:     naming.Separator,
		Capture:  `[\w-]+`,
		Required: true,
		Valid:    regexp.MustCompile(`^(?:0{9}-[A-Z0-9]{5}|[A-Z0-9]{10})$`),
	},
	naming.Field{
		Name:     FieldSamplesheetStr,
		Label:    "SampleSheet string",
		Lead:     naming.Separator,
		Capture:  `[sS]\w+`,
		Required: true,
		Valid:    regexp.MustCompile(`^SampleSheet$`),
	},
	naming.Field{
		Name:     FieldFileExt,
		Label:    "File extension",
		Capture:  `\.\w+`,
		Required: true,
		Valid:    regexp.MustCompile(`^\.csv$`),
	},
)

// joinedFields are joined with Separator before the file extension is
// appended.
var joinedFields = []string{
	FieldDate,
	FieldSequencerID,
	FieldAutoIncrNo,
	FieldFlowcellID,
	FieldSamplesheetStr,
}

// Fields returns the names of the fields of a samplesheet name, in order.
func Fields() []string {
	return grammar.Fields()
}
