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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/barca/internal/types"
)

func TestNewBoardParsesStartFen(t *testing.T) {
	b := NewBoard(StartFen)
	assert.Equal(t, types.White, b.SideToMove())
	assert.Len(t, b.Pieces(), 12)
	assert.Equal(t, 6, b.Occupancy().And(b.ByColor(types.White)).PopCount())
	assert.Equal(t, 6, b.Occupancy().And(b.ByColor(types.Black)).PopCount())
	assert.False(t, b.GameLost())
}

func TestMovePieceIsSelfInverse(t *testing.T) {
	b := NewBoard(StartFen)
	keyBefore := b.Key()
	sideBefore := b.SideToMove()

	p := b.Pieces()[0]
	from := p.Square
	b.UpdateMoveSets()
	require.False(t, p.Moves.IsEmpty(), "first piece on the start position must have a legal move")
	to := p.Moves.ScanForward()

	b.MovePiece(p, to)
	assert.NotEqual(t, keyBefore, b.Key())
	assert.Equal(t, sideBefore.Flip(), b.SideToMove())
	assert.Same(t, p, b.PieceAt(to))
	assert.Nil(t, b.PieceAt(from))

	b.MovePiece(p, from)
	assert.Equal(t, keyBefore, b.Key())
	assert.Equal(t, sideBefore, b.SideToMove())
	assert.Same(t, p, b.PieceAt(from))
}

func TestForcedMoveRuleOnlyAffectsThreatenedPieceWithEscape(t *testing.T) {
	// A lone white Lion next to a black Elephant (its predator) and a safe
	// square to flee to; the other white piece, a Mouse, must sit out the turn.
	b := NewBoard("" +
		".........." +
		".........." +
		".........." +
		".........." +
		"....L....." +
		"...e......" +
		".........." +
		".........." +
		".........." +
		"M.........")
	b.UpdateMoveSets()

	var lion, mouse *Piece
	for _, p := range b.Pieces() {
		if p.Type == types.Lion {
			lion = p
		}
		if p.Type == types.Mouse {
			mouse = p
		}
	}
	require.NotNil(t, lion)
	require.NotNil(t, mouse)

	assert.True(t, lion.Threatened)
	assert.True(t, b.IsSideForced())
	assert.True(t, lion.Forced)
	assert.False(t, lion.Moves.IsEmpty())
	assert.False(t, mouse.Forced)
	assert.True(t, mouse.Moves.IsEmpty())
}

func TestGameLostWhenOpponentHoldsThreeWateringHoles(t *testing.T) {
	// Rows top-to-bottom are 9..0; the four watering holes sit at
	// (row4,col4), (row4,col5), (row5,col4), (row5,col5). Three of the four
	// held by Black (the side to move's opponent) is enough to lose.
	b := NewBoard("" +
		".........." +
		".........." +
		".........." +
		".........." +
		"....mm...." + // row5: cols 4,5
		"....m....." + // row4: col 4
		".........." +
		".........." +
		".........." +
		"M.........")
	assert.True(t, b.GameLost())
}
