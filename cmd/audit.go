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
	"github.com/moka-guys/seglh-naming/lims"
	"github.com/moka-guys/seglh-naming/sheets"
	"github.com/spf13/cobra"
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check stored names.",
	Long: `Check stored names.

The audit sub-commands retrieve names from somewhere they are stored, and check
them all like the validate command does.
`,
}

// auditLIMSCmd represents the audit lims command.
var auditLIMSCmd = &cobra.Command{
	Use:   "lims run",
	Short: "Check the sample names of a sequencing run in the LIMS.",
	Long: `Check the sample names of a sequencing run in the LIMS.

SEGLH_NAMING_SQL_USER, SEGLH_NAMING_SQL_PASS, SEGLH_NAMING_SQL_HOST,
SEGLH_NAMING_SQL_PORT and SEGLH_NAMING_SQL_DB must be set.

An example command line could look like this:
$ seglh-naming audit lims 211008_A01229_0040_AHKGTFDRXY
`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := cfg.RequireSQL(); err != nil {
			return err
		}

		db, err := lims.New(lims.MySQLConfigFromConfig(cfg))
		if err != nil {
			return err
		}

		client := audit.New(db, nil, clientOptions())

		defer client.Close()

		info("retrieving sample names for run %s", args[0])

		report, err := client.ForRun(args[0])
		if err != nil {
			return err
		}

		return outputReport(report, false)
	},
}

// auditSheetCmd represents the audit sheet command.
var auditSheetCmd = &cobra.Command{
	Use:   "sheet docID sheetName column",
	Short: "Check the names in a column of a Google sheet.",
	Long: `Check the names in a column of a Google sheet.

SEGLH_NAMING_CREDENTIALS_FILE must be set to the path of a service account
credentials JSON file with read access to the sheet. The docID is the long
string of characters in the URL when viewing the document, and column is the
header of the column holding the names.

An example command line could look like this:
$ seglh-naming audit sheet 1a2B3c Samples sample_name
`,
	Args: cobra.ExactArgs(3), //nolint:mnd
	RunE: func(_ *cobra.Command, args []string) error {
		sc, err := sheets.ServiceCredentialsFromConfig(cfg)
		if err != nil {
			return err
		}

		s, err := sheets.New(sc)
		if err != nil {
			return err
		}

		client := audit.New(nil, s, clientOptions())

		info("retrieving names from column %s of sheet %s", args[2], args[1])

		report, err := client.ForSheet(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		return outputReport(report, false)
	},
}

func init() {
	RootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditLIMSCmd)
	auditCmd.AddCommand(auditSheetCmd)
}

func clientOptions() audit.ClientOptions {
	return audit.ClientOptions{
		CacheLifetime: cfg.CacheLifetime,
		Workers:       cfg.Workers,
	}
}
