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

package transpositiontable

import (
	"github.com/frankkopp/barca/internal/bitboard"
	"github.com/frankkopp/barca/internal/types"
)

// Flag records what kind of bound a stored value represents.
type Flag uint8

const (
	FlagEmpty Flag = iota
	FlagExact
	FlagStatic
	FlagAlpha
	FlagBeta
)

func (f Flag) String() string {
	switch f {
	case FlagExact:
		return "EXACT"
	case FlagStatic:
		return "STATIC"
	case FlagAlpha:
		return "ALPHA"
	case FlagBeta:
		return "BETA"
	default:
		return "EMPTY"
	}
}

// Entry is one transposition table slot.
type Entry struct {
	Key     bitboard.Bitboard100
	Move    types.Move
	Value   types.Value
	Depth   int
	Flag    Flag
	FoundAt int // game ply at which this entry was stored
}

// IsEmpty reports whether the slot has never been written.
func (e *Entry) IsEmpty() bool {
	return e.Flag == FlagEmpty
}
