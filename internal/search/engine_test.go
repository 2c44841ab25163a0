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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/barca/internal/config"
	"github.com/frankkopp/barca/internal/position"
	"github.com/frankkopp/barca/internal/types"
)

func init() {
	config.Setup()
}

// TestSearchFindsMateInOne builds a position where White already holds two
// of the four watering holes and has a single clear slide onto the third,
// which immediately loses the game for Black (GameLost counts the side to
// move's opponent's held holes). A one-ply search must find it.
func TestSearchFindsMateInOne(t *testing.T) {
	b := position.NewBoard("" +
		".........." +
		".........." +
		".........." +
		".........." +
		"....MM...." +
		".........." +
		".........." +
		".........." +
		".........." +
		"m...M.....")

	e := NewEngine(b)
	e.Init()
	defer e.Close()

	for e.Search(0, 1) {
	}

	best := e.SuggestedMove()
	require.True(t, best.IsValid())
	assert.Equal(t, types.MakeSquare(0, 4), best.From())
	assert.Equal(t, types.MakeSquare(4, 4), best.To())
	assert.True(t, e.lastEval.IsMate())
	assert.True(t, e.lastEval > 0)
}

func TestSearchFromStartPositionProducesLegalMove(t *testing.T) {
	b := position.NewBoard(position.StartFen)
	e := NewEngine(b)
	e.Init()
	defer e.Close()

	for e.Search(200, 2) {
	}

	best := e.SuggestedMove()
	require.True(t, best.IsValid())
	p := b.PieceAt(best.From())
	require.NotNil(t, p)
	assert.Equal(t, types.White, p.Color)
}

func TestOnMovePlayedShiftsMatchingPVHead(t *testing.T) {
	b := position.NewBoard(position.StartFen)
	e := NewEngine(b)
	e.Init()
	defer e.Close()

	for e.Search(200, 2) {
	}
	first := e.SuggestedMove()
	require.True(t, first.IsValid())
	pvLenBefore := e.lastPV.Len()

	e.OnMovePlayed(first)

	assert.Equal(t, pvLenBefore-1, e.lastPV.Len())
}
