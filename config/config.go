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

package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/joho/godotenv"
)

const (
	EnvVarLogLevel      = "SEGLH_NAMING_LOG_LEVEL"
	EnvVarCreds         = "SEGLH_NAMING_CREDENTIALS_FILE"
	EnvVarUser          = "SEGLH_NAMING_SQL_USER"
	EnvVarPass          = "SEGLH_NAMING_SQL_PASS"
	EnvVarHost          = "SEGLH_NAMING_SQL_HOST"
	EnvVarPort          = "SEGLH_NAMING_SQL_PORT"
	EnvVarDBName        = "SEGLH_NAMING_SQL_DB"
	EnvVarCacheLifetime = "SEGLH_NAMING_CACHE_LIFETIME"
	EnvVarWorkers       = "SEGLH_NAMING_WORKERS"

	DefaultCacheLifetime = 10 * time.Minute
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrMissingEnvs = Error("missing required environment variables")
	ErrBadWorkers  = Error("workers must be a positive integer")
)

type Config struct {
	LogLevel        log15.Lvl
	CredentialsPath string
	User            string
	Password        string
	Host            string
	Port            string
	DBName          string
	CacheLifetime   time.Duration
	Workers         int
}

// FromEnv returns a new Config with properies populated from environment
// variables SEGLH_NAMING_*, where * is amongst: LOG_LEVEL, CREDENTIALS_FILE,
// SQL_USER, SQL_PASS, SQL_HOST, SQL_PORT, SQL_DB, CACHE_LIFETIME and WORKERS.
//
// None are required here; use RequireSQL() and RequireSheets() to check that
// the ones needed for a particular source of names are set. LOG_LEVEL defaults
// to info, CACHE_LIFETIME to 10m and WORKERS to the number of CPUs.
//
// If these environment variables are defined in a file called .env (and not
// previously set in an environment variable), they will be automatically
// loaded.
//
// Optionally supply a directory to look for the .env file in.
func FromEnv(dir ...string) (*Config, error) {
	var parentDir string
	if len(dir) == 1 {
		parentDir = dir[0] + string(os.PathSeparator)
	}

	godotenv.Load(parentDir + ".env") //nolint:errcheck

	c := &Config{
		LogLevel:        log15.LvlInfo,
		CredentialsPath: os.Getenv(EnvVarCreds),
		User:            os.Getenv(EnvVarUser),
		Password:        os.Getenv(EnvVarPass),
		Host:            os.Getenv(EnvVarHost),
		Port:            os.Getenv(EnvVarPort),
		DBName:          os.Getenv(EnvVarDBName),
		CacheLifetime:   DefaultCacheLifetime,
		Workers:         runtime.NumCPU(),
	}

	if lvl := os.Getenv(EnvVarLogLevel); lvl != "" {
		l, err := log15.LvlFromString(lvl)
		if err != nil {
			return nil, err
		}

		c.LogLevel = l
	}

	if lifetime := os.Getenv(EnvVarCacheLifetime); lifetime != "" {
		d, err := time.ParseDuration(lifetime)
		if err != nil {
			return nil, err
		}

		c.CacheLifetime = d
	}

	if workers := os.Getenv(EnvVarWorkers); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil || n < 1 {
			return nil, ErrBadWorkers
		}

		c.Workers = n
	}

	return c, nil
}

// RequireSQL returns ErrMissingEnvs if any of the SQL_* variables were not
// set.
func (c *Config) RequireSQL() error {
	if c.User == "" || c.Password == "" || c.Host == "" || c.Port == "" || c.DBName == "" {
		return ErrMissingEnvs
	}

	return nil
}

// RequireSheets returns ErrMissingEnvs if CREDENTIALS_FILE was not set.
func (c *Config) RequireSheets() error {
	if c.CredentialsPath == "" {
		return ErrMissingEnvs
	}

	return nil
}
