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

package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	googleSheets "google.golang.org/api/sheets/v4"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoData        = Error("no data found in sheet")
	ErrMissingColumn = Error("column not found in sheet")
)

// Sheets allows the retrival of sheets from Google docs.
type Sheets struct {
	srv *googleSheets.Service
}

// New returns a Sheets that you can Read() sheets from Google docs with.
func New(sc *ServiceCredentials) (*Sheets, error) {
	ctx := context.Background()
	client := sc.toJWTConfig().Client(ctx)

	srv, err := googleSheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return &Sheets{srv: srv}, nil
}

// Sheet contains the retrieved cells in a Google sheet.
type Sheet struct {
	ColumnHeaders []string
	Rows          [][]string
}

// Read retrieves the contents of a given document and sheet within that
// document. The id of a Google sheet is the long string of characters in the
// URL when viewing that document. Returns ErrNoData if the sheet is empty.
func (s *Sheets) Read(docID, sheetName string) (*Sheet, error) {
	valRange, err := s.srv.Spreadsheets.Values.Get(docID, sheetName).Do()
	if err != nil {
		return nil, err
	}

	return valuesToSheet(valRange.Values)
}

func valuesToSheet(values [][]any) (*Sheet, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}

	rows := make([][]string, len(values)-1)

	for i, row := range values[1:] {
		rows[i] = rowToStringSlice(row)
	}

	return &Sheet{
		ColumnHeaders: rowToStringSlice(values[0]),
		Rows:          rows,
	}, nil
}

func rowToStringSlice(in []any) []string {
	out := make([]string, len(in))

	for i, cols := range in {
		out[i] = fmt.Sprint(cols)
	}

	return out
}

// Column returns the non-blank values in the column with the given header.
// Returns ErrMissingColumn if there's no such column.
func (s *Sheet) Column(header string) ([]string, error) {
	col := -1

	for i, h := range s.ColumnHeaders {
		if h == header {
			col = i

			break
		}
	}

	if col == -1 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, header)
	}

	values := make([]string, 0, len(s.Rows))

	for _, row := range s.Rows {
		if col >= len(row) || row[col] == "" {
			continue
		}

		values = append(values, row[col])
	}

	return values, nil
}

// ReadColumn is a convenience that Read()s the given sheet and returns the
// values of the given Column() of it.
func (s *Sheets) ReadColumn(docID, sheetName, header string) ([]string, error) {
	sheet, err := s.Read(docID, sheetName)
	if err != nil {
		return nil, err
	}

	return sheet.Column(header)
}
