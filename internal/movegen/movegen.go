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

// Package movegen generates legal moves for the side to move in four
// priority stages, so alpha-beta sees the most promising moves first.
package movegen

import (
	"github.com/frankkopp/barca/internal/bitboard"
	"github.com/frankkopp/barca/internal/position"
	"github.com/frankkopp/barca/internal/types"
)

// StackCapacity bounds the shared move stack: branching factor is at most a
// handful of squares per piece times twelve pieces, times the maximum search
// line length, with generous headroom.
const StackCapacity = 2048

// Stack is a zero-allocation, per-ply move list: callers mark a position
// before generating and truncate back to it on unmake, exactly mirroring
// make/unmake of the board itself.
type Stack struct {
	moves [StackCapacity]types.Move
	len   int
}

// Mark returns the current stack length, to be passed to TruncateTo later.
func (s *Stack) Mark() int { return s.len }

// TruncateTo discards everything generated since mark.
func (s *Stack) TruncateTo(mark int) { s.len = mark }

// Slice returns the moves generated between from and to (as returned by Mark).
func (s *Stack) Slice(from, to int) []types.Move { return s.moves[from:to] }

func (s *Stack) push(m types.Move) {
	s.moves[s.len] = m
	s.len++
}

func wateringHoleLineMask(pt types.PieceType) bitboard.Bitboard100 {
	switch pt {
	case types.Mouse:
		return bitboard.WateringHoleOrthoLines
	case types.Lion:
		return bitboard.WateringHoleDiagLines
	case types.Elephant:
		return bitboard.WateringHoleOrthoLines.Or(bitboard.WateringHoleDiagLines)
	default:
		return bitboard.Empty
	}
}

// GenerateMoves appends the legal moves of the side to move to s, in four
// priority stages (watering holes, threatening moves, watering-hole lines,
// remaining), honoring the forced-move rule already applied to b.
func GenerateMoves(b *position.Board, s *Stack) {
	side := b.SideToMove()
	forced := b.IsSideForced()

	for _, p := range b.Pieces() {
		if p.Color != side {
			continue
		}
		if forced && !p.Forced {
			continue
		}
		generateForPiece(b, s, p)
	}
}

func generateForPiece(b *position.Board, s *Stack, p *position.Piece) {
	remaining := p.Moves
	stage1 := remaining.And(bitboard.WateringHoleMask)
	remaining = remaining.AndNot(stage1)
	serialize(s, p.Square, stage1, p.Color)

	threatMask := b.ThreatMap(p.Color.Flip(), p.Type.Scares())
	stage2 := remaining.And(threatMask)
	remaining = remaining.AndNot(stage2)
	serialize(s, p.Square, stage2, p.Color)

	stage3 := remaining.And(wateringHoleLineMask(p.Type))
	remaining = remaining.AndNot(stage3)
	serialize(s, p.Square, stage3, p.Color)

	serialize(s, p.Square, remaining, p.Color)
}

// serialize pushes moves for each destination bit in dests, in ascending
// order for White (LSB to MSB, advancing toward the opponent) and
// descending order for Black (MSB to LSB).
func serialize(s *Stack, from types.Square, dests bitboard.Bitboard100, side types.Color) {
	if side == types.White {
		for !dests.IsEmpty() {
			to := dests.PopLsb()
			s.push(types.CreateMove(from, to))
		}
	} else {
		for !dests.IsEmpty() {
			to := dests.PopMsb()
			s.push(types.CreateMove(from, to))
		}
	}
}
