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

package cmd

import (
	"github.com/moka-guys/seglh-naming/audit"
	"github.com/moka-guys/seglh-naming/sample"
	"github.com/moka-guys/seglh-naming/samplesheet"
	"github.com/spf13/cobra"
)

const (
	ErrBadKind = Error("kind must be auto, sample or samplesheet")

	kindAuto = "auto"
)

// options for this cmd.
var parseKind string

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse name [name...]",
	Short: "Show the fields of names.",
	Long: `Show the fields of names.

Each name is parsed and validated, and its fields, canonical form, full form,
hash and (for sample file names) file extension are shown.

By default it is worked out if each name is a sample or samplesheet name; use
--kind to force one or the other.

Any invalid name makes this command exit non-zero after the valid ones have
been shown.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, names []string) error {
		parsed := make([]*parsedName, 0, len(names))
		failed := 0

		for _, name := range names {
			p, err := parseName(name, parseKind)
			if err != nil {
				warn("%s: %s", name, err)

				failed++

				continue
			}

			parsed = append(parsed, p)
		}

		if err := output(parsed, func() { printParsed(parsed) }); err != nil {
			return err
		}

		if failed > 0 {
			die("%d of %d names were invalid", failed, len(names))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseKind, "kind", "k", kindAuto,
		"kind of name: auto, sample or samplesheet")
}

type fieldValue struct {
	Field string `json:"field" yaml:"field"`
	Value string `json:"value" yaml:"value"`
}

type parsedName struct {
	Name      string       `json:"name"                yaml:"name"`
	Kind      audit.Kind   `json:"kind"                yaml:"kind"`
	Path      string       `json:"path,omitempty"      yaml:"path,omitempty"`
	Canonical string       `json:"canonical"           yaml:"canonical"`
	FullName  string       `json:"full_name"           yaml:"full_name"`
	Hash      string       `json:"hash"                yaml:"hash"`
	Extension string       `json:"extension,omitempty" yaml:"extension,omitempty"`
	Fields    []fieldValue `json:"fields"              yaml:"fields"`
}

// getter is satisfied by both sample.Sample and samplesheet.Samplesheet.
type getter interface {
	Get(field string) string
}

func fieldValues(g getter, fields []string) []fieldValue {
	fvs := make([]fieldValue, 0, len(fields))

	for _, field := range fields {
		if v := g.Get(field); v != "" {
			fvs = append(fvs, fieldValue{Field: field, Value: v})
		}
	}

	return fvs
}

func parseName(name, kind string) (*parsedName, error) {
	if kind == kindAuto {
		kind = string(audit.CheckName(name).Kind)
	}

	switch audit.Kind(kind) {
	case audit.KindSamplesheet:
		return parseSamplesheet(name)
	case audit.KindSample, audit.KindUnknown:
		return parseSample(name)
	default:
		return nil, ErrBadKind
	}
}

func parseSample(name string) (*parsedName, error) {
	s, err := sample.Parse(name)
	if err != nil {
		return nil, err
	}

	p := &parsedName{
		Name:      name,
		Kind:      audit.KindSample,
		Path:      s.Path(),
		Canonical: s.String(),
		FullName:  s.FullName(),
		Hash:      s.Hash(),
		Fields:    fieldValues(s, sample.Fields()),
	}

	if s.Rest() != "" {
		p.Extension, _ = s.FileExtension(true) //nolint:errcheck
	}

	return p, nil
}

func parseSamplesheet(name string) (*parsedName, error) {
	s, err := samplesheet.Parse(name)
	if err != nil {
		return nil, err
	}

	return &parsedName{
		Name:      name,
		Kind:      audit.KindSamplesheet,
		Path:      s.Path(),
		Canonical: s.String(),
		FullName:  s.FullName(),
		Hash:      s.Hash(),
		Fields:    fieldValues(s, samplesheet.Fields()),
	}, nil
}

func printParsed(parsed []*parsedName) {
	for _, p := range parsed {
		cliPrint("%s (%s)\n", p.Name, p.Kind)

		for _, fv := range p.Fields {
			cliPrint("  %-16s %s\n", fv.Field, fv.Value)
		}

		if p.Path != "" {
			cliPrint("  %-16s %s\n", "path", p.Path)
		}

		cliPrint("  %-16s %s\n", "canonical", p.Canonical)

		if p.Extension != "" {
			cliPrint("  %-16s %s\n", "extension", p.Extension)
		}

		cliPrint("  %-16s %s\n", "hash", p.Hash)
	}
}
