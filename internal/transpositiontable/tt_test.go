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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/barca/internal/bitboard"
	"github.com/frankkopp/barca/internal/types"
)

func key(n uint64) bitboard.Bitboard100 {
	return bitboard.Bitboard100{Lo: n, Hi: n ^ 0xA5A5A5A5}
}

func TestPutThenProbeRoundTrip(t *testing.T) {
	tt := NewTable(1)
	k := key(1234)
	m := types.CreateMove(types.MakeSquare(1, 1), types.MakeSquare(2, 2))

	tt.Put(k, 8, FlagExact, types.Value(1234), m, 0, 0)

	res := tt.Probe(k, 8, types.ValueNegInf, types.ValueInf, 0)
	require.True(t, res.Found)
	require.True(t, res.UsableValue)
	assert.Equal(t, types.Value(1234), res.Value)
	assert.Equal(t, m, res.MoveHint)
	assert.Equal(t, FlagExact, res.Flag)
	assert.Equal(t, 8, res.Depth)
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTable(1)
	res := tt.Probe(key(999), 4, types.ValueNegInf, types.ValueInf, 0)
	assert.False(t, res.Found)
	assert.False(t, res.UsableValue)
}

func TestExactEntryNotOverwrittenByNonExact(t *testing.T) {
	tt := NewTable(1)
	k := key(42)
	m1 := types.CreateMove(types.MakeSquare(0, 0), types.MakeSquare(0, 1))
	m2 := types.CreateMove(types.MakeSquare(5, 5), types.MakeSquare(6, 6))

	tt.Put(k, 4, FlagExact, types.Value(500), m1, 0, 0)
	tt.Put(k, 10, FlagAlpha, types.Value(-500), m2, 0, 0)

	res := tt.Probe(k, 4, types.ValueNegInf, types.ValueInf, 0)
	require.True(t, res.Found)
	assert.Equal(t, FlagExact, res.Flag)
	assert.Equal(t, m1, res.MoveHint)
}

func TestMateValueAdjustedForRootDistance(t *testing.T) {
	tt := NewTable(1)
	k := key(7)
	mateIn2 := types.ValueWin - 3

	tt.Put(k, 6, FlagExact, mateIn2, types.MoveNone, 0, 5)
	res := tt.Probe(k, 6, types.ValueNegInf, types.ValueInf, 5)

	require.True(t, res.UsableValue)
	assert.Equal(t, mateIn2, res.Value)
}

func TestGhMatchDetectsRepetitionNotAtRoot(t *testing.T) {
	tt := NewTable(1)
	k := key(55)

	assert.False(t, tt.GhMatch(k, 0), "the root position is never its own repetition")

	tt.GhStore(k)
	assert.True(t, tt.GhMatch(k, 1))

	tt.GhRemove(k)
	assert.False(t, tt.GhMatch(k, 1))
}

func TestAgeEntriesDecaysStoredDepth(t *testing.T) {
	tt := NewTable(1)
	k := key(3)
	tt.Put(k, 5, FlagExact, types.Value(1), types.MoveNone, 0, 0)

	tt.AgeEntries()

	res := tt.Probe(k, 5, types.ValueNegInf, types.ValueInf, 0)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Depth)
}

func TestClearResetsEntriesAndChains(t *testing.T) {
	tt := NewTable(1)
	k := key(11)
	tt.Put(k, 3, FlagExact, types.Value(1), types.MoveNone, 0, 0)
	tt.GhStore(k)

	tt.Clear()

	res := tt.Probe(k, 3, types.ValueNegInf, types.ValueInf, 0)
	assert.False(t, res.Found)
	assert.False(t, tt.GhMatch(k, 1))
}
