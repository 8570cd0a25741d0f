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

// Package lims lets you retrieve the sample names recorded against a
// sequencing run in the laboratory's MySQL database.
package lims

import (
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/moka-guys/seglh-naming/config"
)

const (
	sqlDriverName   = "mysql"
	sqlNetwork      = "tcp"
	connMaxLifetime = time.Minute * 3
	maxOpenConns    = 10
	maxIdleConns    = 10
)

// LIMS is a connection to the LIMS database.
type LIMS struct {
	pool *sql.DB
}

// MySQLConfigFromConfig converts our config in to a mysql.Config suitable for
// New().
func MySQLConfigFromConfig(c *config.Config) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = sqlNetwork
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.DBName
	mc.ParseTime = true

	return mc
}

// New returns a new LIMS connection using mysql.Config that you can get from
// MySQLConfigFromConfig(config.FromEnv()).
func New(c *mysql.Config) (*LIMS, error) {
	pool, err := sql.Open(sqlDriverName, c.FormatDSN())
	if err != nil {
		return nil, err
	}

	pool.SetConnMaxLifetime(connMaxLifetime)
	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxIdleConns)

	return &LIMS{pool: pool}, pool.Ping()
}

const getSampleNames = `
SELECT DISTINCT s.sample_name
FROM sample s
JOIN run r ON r.id_run = s.id_run
WHERE r.run_name = ?
ORDER BY s.sample_name
`

// SampleNames returns the names of all samples sequenced in the given run.
func (l *LIMS) SampleNames(runName string) ([]string, error) {
	rows, err := l.pool.Query(getSampleNames, runName)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string

		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	if err := rows.Close(); err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// Close closes the connection to the LIMS.
func (l *LIMS) Close() error {
	return l.pool.Close()
}
