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

// Package logging wires a single shared op/go-logging backend and hands out
// named loggers to the rest of the engine.
package logging

import (
	"os"

	. "github.com/op/go-logging"
)

var levelByName = map[string]Level{
	"critical": CRITICAL,
	"error":    ERROR,
	"warning":  WARNING,
	"notice":   NOTICE,
	"info":     INFO,
	"debug":    DEBUG,
}

var backendLeveled *LeveledBackend

func init() {
	backend1 := NewLogBackend(os.Stdout, "", 0)
	format := MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	backend1Formatter := NewBackendFormatter(backend1, format)
	leveled := AddModuleLevel(backend1Formatter)
	leveled.SetLevel(INFO, "")
	SetBackend(leveled)
	backendLeveled = &leveled
}

// GetLog returns a named logger sharing the package's single backend.
func GetLog(name string) *Logger {
	return MustGetLogger(name)
}

// SetLevel sets the logging level for all loggers sharing this backend.
// Unknown names are ignored, leaving the previous level in place.
func SetLevel(name string) {
	lvl, ok := levelByName[name]
	if !ok || backendLeveled == nil {
		return
	}
	(*backendLeveled).SetLevel(lvl, "")
}
