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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/barca/internal/position"
	"github.com/frankkopp/barca/internal/types"
)

func TestGenerateMovesFromStartPositionOnlyMovesSideToMove(t *testing.T) {
	b := position.NewBoard(position.StartFen)
	b.UpdateMoveSets()

	var s Stack
	mark := s.Mark()
	GenerateMoves(b, &s)
	moves := s.Slice(mark, s.Mark())
	require.NotEmpty(t, moves)

	for _, m := range moves {
		p := b.PieceAt(m.From())
		require.NotNil(t, p)
		assert.Equal(t, types.White, p.Color)
		assert.True(t, p.Moves.Has(m.To()))
	}
}

func TestGenerateMovesHonorsForcedRule(t *testing.T) {
	b := position.NewBoard("" +
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
	require.True(t, b.IsSideForced())

	var s Stack
	mark := s.Mark()
	GenerateMoves(b, &s)
	moves := s.Slice(mark, s.Mark())
	require.NotEmpty(t, moves)

	for _, m := range moves {
		p := b.PieceAt(m.From())
		assert.Equal(t, types.Lion, p.Type, "only the forced Lion may move this turn")
	}
}

func TestStackMarkTruncateToDiscardsGeneratedMoves(t *testing.T) {
	b := position.NewBoard(position.StartFen)
	b.UpdateMoveSets()

	var s Stack
	GenerateMoves(b, &s)
	full := s.Mark()
	require.Greater(t, full, 0)

	mark := s.Mark()
	GenerateMoves(b, &s)
	assert.Greater(t, s.Mark(), mark)

	s.TruncateTo(mark)
	assert.Equal(t, mark, s.Mark())
}
