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

// Package audit checks many names at once, working out if each is a sample or
// samplesheet name and reporting why invalid ones are invalid.
package audit

import (
	"errors"
	"sync"

	"github.com/moka-guys/seglh-naming/naming"
	"github.com/moka-guys/seglh-naming/sample"
	"github.com/moka-guys/seglh-naming/samplesheet"
)

// Kind is the naming convention a name was found to follow.
type Kind string

const (
	KindSample      Kind = "sample"
	KindSamplesheet Kind = "samplesheet"
	KindUnknown     Kind = "unknown"
)

// Result is the outcome of checking a single name.
type Result struct {
	Name      string `json:"name"                yaml:"name"`
	Kind      Kind   `json:"kind"                yaml:"kind"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Hash      string `json:"hash,omitempty"      yaml:"hash,omitempty"`
	Error     string `json:"error,omitempty"     yaml:"error,omitempty"`
}

// Valid tells you if the name was valid.
func (r Result) Valid() bool {
	return r.Error == ""
}

// Report holds the Results of checking a set of names, in the order the names
// were given.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Valid   int      `json:"valid"   yaml:"valid"`
	Invalid int      `json:"invalid" yaml:"invalid"`
}

// InvalidResults returns just the Results for invalid names.
func (r *Report) InvalidResults() []Result {
	invalid := make([]Result, 0, r.Invalid)

	for _, res := range r.Results {
		if !res.Valid() {
			invalid = append(invalid, res)
		}
	}

	return invalid
}

// Check checks every name using up to the given number of concurrent workers
// (at least 1 is always used).
func Check(names []string, workers int) *Report {
	results := make([]Result, len(names))

	if workers < 1 {
		workers = 1
	}

	indexes := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range indexes {
				results[i] = CheckName(names[i])
			}
		}()
	}

	for i := range names {
		indexes <- i
	}

	close(indexes)
	wg.Wait()

	report := &Report{Results: results}

	for _, res := range results {
		if res.Valid() {
			report.Valid++
		} else {
			report.Invalid++
		}
	}

	return report
}

// CheckName parses name as a sample name, and failing that as a samplesheet
// name. Invalid names are reported with the error of the convention they
// looked most like: a name that has the shape of a samplesheet name but isn't
// valid gets the samplesheet error, otherwise the sample error.
func CheckName(name string) Result {
	s, err := sample.Parse(name)
	if err == nil {
		return Result{Name: name, Kind: KindSample, Canonical: s.String(), Hash: s.Hash()}
	}

	ss, ssErr := samplesheet.Parse(name)
	if ssErr == nil {
		return Result{Name: name, Kind: KindSamplesheet, Canonical: ss.String(), Hash: ss.Hash()}
	}

	sampleMalformed := isMalformed(err)

	switch {
	case sampleMalformed && !isMalformed(ssErr):
		return Result{Name: name, Kind: KindSamplesheet, Error: ssErr.Error()}
	case sampleMalformed:
		return Result{Name: name, Kind: KindUnknown, Error: err.Error()}
	default:
		return Result{Name: name, Kind: KindSample, Error: err.Error()}
	}
}

func isMalformed(err error) bool {
	var me *naming.MalformedError

	return errors.As(err, &me)
}
