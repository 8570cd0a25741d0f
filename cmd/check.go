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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/moka-guys/seglh-naming/audit"
	"github.com/spf13/cobra"
)

// hashCmd represents the hash command.
var hashCmd = &cobra.Command{
	Use:   "hash name [name...]",
	Short: "Get stable obfuscated versions of names.",
	Long: `Get stable obfuscated versions of names.

The hash of a valid name only depends on its canonical form, so a sample name
and all the file names derived from it hash to the same value.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, names []string) error {
		return outputReport(audit.Check(names, cfg.Workers), true)
	},
}

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [name...]",
	Short: "Check lots of names at once.",
	Long: `Check lots of names at once.

Names are given as arguments, or one per line on STDIN if there are no
arguments. Each is checked as a sample or samplesheet name, and the invalid
ones are reported along with why they are invalid.

This command exits non-zero if any name was invalid.
`,
	RunE: func(_ *cobra.Command, names []string) error {
		if len(names) == 0 {
			var err error

			names, err = readNames(os.Stdin)
			if err != nil {
				return err
			}
		}

		return outputReport(audit.Check(names, cfg.Workers), false)
	},
}

func init() {
	RootCmd.AddCommand(hashCmd)
	RootCmd.AddCommand(validateCmd)
}

// readNames returns the non-blank lines of r.
func readNames(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}

	return names, scanner.Err()
}

// outputReport prints the report in the chosen --format. In text format with
// all true, every result is shown, otherwise only invalid ones. It exits non
// zero if any name was invalid.
func outputReport(report *audit.Report, all bool) error {
	err := output(report, func() {
		for _, res := range report.Results {
			switch {
			case !res.Valid():
				cliPrint("%s\tINVALID\t%s\n", res.Name, res.Error)
			case all:
				cliPrint("%s\t%s\n", res.Hash, res.Name)
			}
		}
	})
	if err != nil {
		return err
	}

	info("checked %d names: %d valid, %d invalid", len(report.Results), report.Valid, report.Invalid)

	if report.Invalid > 0 {
		die("%d names were invalid", report.Invalid)
	}

	return nil
}
