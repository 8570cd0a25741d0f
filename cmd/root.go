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

// package cmd is the cobra file that enables subcommands and handles
// command-line args.

package cmd

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/moka-guys/seglh-naming/config"
	"github.com/spf13/cobra"
)

type Error string

func (e Error) Error() string { return string(e) }

// appLogger is used for logging events in our commands.
var appLogger = log15.New()

// cfg is our configuration, loaded before any sub-command runs.
var cfg *config.Config

// global options.
var outputFormat string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "seglh-naming",
	Short: "seglh-naming parses and validates SEGLH sample and samplesheet names",
	Long: `seglh-naming parses and validates SEGLH sample and samplesheet names.

Sample names look like NGS123_12_382398_JD_M_VCP0R33_Pan0000_S12_R1_001.fastq.gz
and samplesheet names look like 211008_A01229_0040_AHKGTFDRXY_SampleSheet.csv.

Use the "parse" sub-command to see the fields of names, "hash" to get stable
obfuscated versions of them, and "validate" to check lots of names at once.
The "audit" sub-commands check the names stored in the LIMS database or in a
Google sheet.

Configuration is by SEGLH_NAMING_* environment variables, which may also be
placed in a .env file in the current directory.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		c, err := config.FromEnv()
		if err != nil {
			return err
		}

		cfg = c

		appLogger.SetHandler(log15.LvlFilterHandler(cfg.LogLevel, log15.StderrHandler))

		return checkFormat(outputFormat)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once to
// the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		die("%s", err.Error())
	}
}

func init() {
	// set up logging to stderr
	appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StderrHandler))

	RootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatText,
		"output format: text, json or yaml")
}

// cliPrint outputs the message to STDOUT.
func cliPrint(msg string, a ...interface{}) {
	fmt.Fprintf(os.Stdout, msg, a...)
}

// info is a convenience to log a message at the Info level.
func info(msg string, a ...interface{}) {
	appLogger.Info(fmt.Sprintf(msg, a...))
}

// warn is a convenience to log a message at the Warn level.
func warn(msg string, a ...interface{}) {
	appLogger.Warn(fmt.Sprintf(msg, a...))
}

// die is a convenience to log a message at the Error level and exit non zero.
func die(msg string, a ...interface{}) {
	appLogger.Error(fmt.Sprintf(msg, a...))
	os.Exit(1)
}
