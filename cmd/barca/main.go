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

// Command barca runs the core search engine once against a position and
// prints the suggested move, its evaluation and the principal variation. It
// deliberately has no GUI, no protocol loop and no opening book: those are
// outer-surface concerns outside the engine core.
package main

import (
	"flag"
	"fmt"

	"github.com/frankkopp/barca/internal/config"
	"github.com/frankkopp/barca/internal/logging"
	"github.com/frankkopp/barca/internal/position"
	"github.com/frankkopp/barca/internal/search"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level (critical|error|warning|notice|info|debug)")
	fen := flag.String("position", position.StartFen, "position string to search from")
	timeMs := flag.Int("movetime", 0, "search time in milliseconds (0 = use config default)")
	maxDepth := flag.Int("depth", 0, "maximum search depth (0 = use config default)")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.Settings.Log.Level = *logLvl
	}
	logging.SetLevel(config.Settings.Log.Level)

	movetime := *timeMs
	if movetime == 0 {
		movetime = config.Settings.Search.TimeLimitMs
	}
	depth := *maxDepth
	if depth == 0 {
		depth = config.Settings.Search.MaxDepth
	}

	board := position.NewBoard(*fen)
	engine := search.NewEngine(board)
	engine.Init()
	defer engine.Close()

	for engine.Search(movetime, depth) {
	}

	fmt.Println(board.String())
	fmt.Printf("bestmove %s\n", engine.SuggestedMove())
	fmt.Printf("eval     %s\n", engine.SearchEval())
	fmt.Printf("pv       %s\n", engine.SearchPV())
	fmt.Printf("depth    %d\n", engine.SearchDepth())
	fmt.Printf("time     %.3fs\n", engine.SearchDuration())
}
