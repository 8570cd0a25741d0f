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

package audit

import (
	"strings"
	"sync"
	"time"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoLIMS   = Error("no LIMS connection configured")
	ErrNoSheets = Error("no Google Sheets connection configured")

	keySeparator = "\x00"
)

type LIMSClient interface {
	// SampleNames returns the names of all samples sequenced in the given run.
	SampleNames(runName string) ([]string, error)

	// Close closes the connection to the LIMS database.
	Close() error
}

type SheetsClient interface {
	// ReadColumn returns the non-blank values in the column with the given
	// header of the given sheet within the document with the given id.
	ReadColumn(docID, sheetName, header string) ([]string, error)
}

type cacheEntry struct {
	names   []string
	fetched time.Time
}

type cache struct {
	entries  map[string]cacheEntry
	lifetime time.Duration
	mu       sync.RWMutex
}

func newCache(lifetime time.Duration) *cache {
	return &cache{
		entries:  make(map[string]cacheEntry),
		lifetime: lifetime,
	}
}

func (c *cache) getData(key string) (bool, []string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return false, nil
	}

	return entry.fetched.Add(c.lifetime).After(time.Now()), entry.names
}

func (c *cache) storeData(key string, names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{names: names, fetched: time.Now()}
}

// Client can retrieve names from a LIMS database and from Google Sheets and
// check them.
type Client struct {
	lc      LIMSClient
	sc      SheetsClient
	workers int
	cache   *cache
}

// ClientOptions are options for creating a new Client.
type ClientOptions struct {
	// CacheLifetime is the maximum age of cached name lists. 0 disables
	// caching.
	CacheLifetime time.Duration

	// Workers is the number of names checked concurrently.
	Workers int
}

// New returns a new Client that gets names from the given LIMS and Sheets
// clients. Either may be nil if you won't need that source.
func New(lc LIMSClient, sc SheetsClient, opts ClientOptions) *Client {
	return &Client{
		lc:      lc,
		sc:      sc,
		workers: opts.Workers,
		cache:   newCache(opts.CacheLifetime),
	}
}

// ForRun checks the names of all samples sequenced in the given run. Name
// lists are cached, so can be up to CacheLifetime old.
func (c *Client) ForRun(runName string) (*Report, error) {
	if c.lc == nil {
		return nil, ErrNoLIMS
	}

	return c.check("run"+keySeparator+runName, func() ([]string, error) {
		return c.lc.SampleNames(runName)
	})
}

// ForSheet checks the names in the column with the given header of the given
// Google sheet. Name lists are cached, so can be up to CacheLifetime old.
func (c *Client) ForSheet(docID, sheetName, header string) (*Report, error) {
	if c.sc == nil {
		return nil, ErrNoSheets
	}

	key := strings.Join([]string{"sheet", docID, sheetName, header}, keySeparator)

	return c.check(key, func() ([]string, error) {
		return c.sc.ReadColumn(docID, sheetName, header)
	})
}

func (c *Client) check(key string, fetch func() ([]string, error)) (*Report, error) {
	cached, names := c.cache.getData(key)

	if !cached {
		var err error

		names, err = fetch()
		if err != nil {
			return nil, err
		}

		c.cache.storeData(key, names)
	}

	return Check(names, c.workers), nil
}

// Close closes the LIMS connection, if any.
func (c *Client) Close() error {
	if c.lc == nil {
		return nil
	}

	return c.lc.Close()
}
