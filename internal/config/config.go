/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables which are
// either set by defaults or read from a config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

type logConfiguration struct {
	Level string
}

// searchConfiguration holds the tunable parameters of a search instance.
type searchConfiguration struct {
	// TtSizeMb is the transposition table size in megabytes, rounded up to
	// the next power of two number of entries.
	TtSizeMb int

	// TimeLimitMs is the per-search time limit in milliseconds.
	TimeLimitMs int

	// MaxDepth is the per-search maximum depth, bounded by MaxLineLen.
	MaxDepth int

	// UseAspiration enables aspiration windows around the previous
	// iteration's estimate.
	UseAspiration bool

	// UseTT enables transposition table probing and storing.
	UseTT bool
}

// sets bool defaults before the config file is read, so that a config file
// which explicitly sets one of these to false is able to override it: toml
// decoding into an already-populated struct only overwrites fields present
// in the file, and a bare zero-value default would be indistinguishable
// from an explicit "false" in the file.
func init() {
	Settings.Search.UseAspiration = true
	Settings.Search.UseTT = true
}

// Setup reads the configuration file and sets Settings from it, falling back
// to defaults for anything the file does not override.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	setupDefaults()
	initialized = true
}

func setupDefaults() {
	if Settings.Log.Level == "" {
		Settings.Log.Level = "info"
	}
	if Settings.Search.TtSizeMb == 0 {
		Settings.Search.TtSizeMb = 64
	}
	if Settings.Search.MaxDepth == 0 {
		Settings.Search.MaxDepth = 16
	}
	if Settings.Search.TimeLimitMs == 0 {
		Settings.Search.TimeLimitMs = 5000
	}
}

// String prints out the current configuration settings and values using
// reflection to read field names/types/values.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-16s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
