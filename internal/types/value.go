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

package types

import "fmt"

// Value is a search/evaluation score, always from the perspective of the
// side to move.
type Value int32

// Sentinel and bound values. These are not a tagged union: ValueUnknown and
// ValueAborted are reserved values outside the range of real scores.
// internal/search compares returned values against ValueAborted directly;
// transposition table probes report "no value" through the Found and
// UsableValue flags of their result instead of a sentinel.
const (
	ValueDraw       Value = -9999
	ValueWin        Value = 1_000_000
	ValueLoss       Value = -ValueWin
	MaxLineLen      Value = 16
	AspirationWindow Value = 5000

	// ValueUnknown signals "no usable value" from a transposition table probe.
	ValueUnknown Value = -2_000_000

	// ValueAborted signals a search node returned early because of a time check.
	ValueAborted Value = -3_000_000

	// ValueInf / ValueNegInf bound the initial alpha-beta window.
	ValueInf    Value = 2_000_000
	ValueNegInf Value = -ValueInf
)

// IsMate reports whether v is a mate-magnitude score (win or loss within
// MaxLineLen plies), per the |v| > EVAL_WIN - MAX_LINE_LEN rule.
func (v Value) IsMate() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs > ValueWin-MaxLineLen
}

// String renders a value either as a mate count or a signed decimal number
// of watering holes (value / 20000), matching the eval-string format.
func (v Value) String() string {
	if v.IsMate() {
		plies := ValueWin - v
		if v < 0 {
			plies = ValueWin + v
		}
		moves := (int(plies) + 1) / 2
		if v > 0 {
			return fmt.Sprintf("+M%d", moves)
		}
		return fmt.Sprintf("-M%d", moves)
	}
	return fmt.Sprintf("%.3f", float64(v)/20000.0)
}
