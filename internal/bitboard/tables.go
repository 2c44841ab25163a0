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

package bitboard

import (
	"math/rand"

	"github.com/frankkopp/barca/internal/types"
)

// RowMask, FileMask, DiagMask and AntidiagMask hold, for every square, the
// full mask of the line through that square.
var RowMask [types.SqLength]Bitboard100
var FileMask [types.SqLength]Bitboard100
var DiagMask [types.SqLength]Bitboard100
var AntidiagMask [types.SqLength]Bitboard100

// Adjacency holds, for every square, the mask of its (up to 8) neighbors.
var Adjacency [types.SqLength]Bitboard100

// DiagSquares/AntidiagSquares list, for every square, the ordered squares
// sharing its diagonal/antidiagonal (low row to high row), and DiagPos/
// AntidiagPos give the square's own index within that list.
var DiagSquares [types.SqLength][]types.Square
var AntidiagSquares [types.SqLength][]types.Square
var DiagPos [types.SqLength]int
var AntidiagPos [types.SqLength]int

// rowSight[occ][pos] / fileSight[occ][pos] hold the reachable-squares
// bitboard for a slider at line-position pos against the 10-bit collapsed
// occupancy occ, already stretched into every row (resp. file); ANDing with
// RowMask[k] (resp. FileMask[k]) isolates the one real line.
var rowSight [1024][types.Dim]Bitboard100
var fileSight [1024][types.Dim]Bitboard100

// Zobrist holds per-(piece, square) random keys; SideToggle is XORed in
// whenever the side to move changes.
var Zobrist [8][types.SqLength]Bitboard100
var SideToggle Bitboard100

// WateringHoles are the four central squares that are the goal of the game.
var WateringHoles [4]types.Square

// WateringHoleMask, WateringHoleOrthoLines and WateringHoleDiagLines are
// shared between move generation (stage priorities) and evaluation (line
// bonuses), so both read the same geometry.
var WateringHoleMask Bitboard100
var WateringHoleOrthoLines Bitboard100
var WateringHoleDiagLines Bitboard100

func init() {
	initLineMasks()
	initAdjacency()
	initDiagLines()
	initSightTables()
	initZobrist()
	initWateringHoles()
	initWateringHoleLines()
}

func initWateringHoleLines() {
	for _, wh := range WateringHoles {
		WateringHoleMask.Set(wh)
		WateringHoleOrthoLines = WateringHoleOrthoLines.Or(RowMask[wh]).Or(FileMask[wh])
		WateringHoleDiagLines = WateringHoleDiagLines.Or(DiagMask[wh]).Or(AntidiagMask[wh])
	}
}

func initWateringHoles() {
	WateringHoles[0] = types.MakeSquare(4, 4)
	WateringHoles[1] = types.MakeSquare(4, 5)
	WateringHoles[2] = types.MakeSquare(5, 4)
	WateringHoles[3] = types.MakeSquare(5, 5)
}

// IsWateringHole reports whether sq is one of the four watering holes.
func IsWateringHole(sq types.Square) bool {
	for _, wh := range WateringHoles {
		if wh == sq {
			return true
		}
	}
	return false
}

func initLineMasks() {
	for k := 0; k < types.SqLength; k++ {
		sq := types.Square(k)
		row, col := sq.Row(), sq.Col()
		for c := 0; c < types.Dim; c++ {
			RowMask[k].Set(types.MakeSquare(row, c))
		}
		for r := 0; r < types.Dim; r++ {
			FileMask[k].Set(types.MakeSquare(r, col))
		}
		for r := 0; r < types.Dim; r++ {
			c := r - sq.Diag()
			if c >= 0 && c < types.Dim {
				DiagMask[k].Set(types.MakeSquare(r, c))
			}
		}
		for r := 0; r < types.Dim; r++ {
			c := sq.Antidiag() - r
			if c >= 0 && c < types.Dim {
				AntidiagMask[k].Set(types.MakeSquare(r, c))
			}
		}
	}
}

func initAdjacency() {
	deltas := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	for k := 0; k < types.SqLength; k++ {
		sq := types.Square(k)
		row, col := sq.Row(), sq.Col()
		for _, d := range deltas {
			n := types.MakeSquare(row+d[0], col+d[1])
			if n != types.SqNone {
				Adjacency[k].Set(n)
			}
		}
	}
}

func initDiagLines() {
	for k := 0; k < types.SqLength; k++ {
		sq := types.Square(k)
		var dl, adl []types.Square
		for r := 0; r < types.Dim; r++ {
			c := r - sq.Diag()
			if c >= 0 && c < types.Dim {
				dl = append(dl, types.MakeSquare(r, c))
			}
			c2 := sq.Antidiag() - r
			if c2 >= 0 && c2 < types.Dim {
				adl = append(adl, types.MakeSquare(r, c2))
			}
		}
		DiagSquares[k] = dl
		AntidiagSquares[k] = adl
		for i, s := range dl {
			if s == sq {
				DiagPos[k] = i
			}
		}
		for i, s := range adl {
			if s == sq {
				AntidiagPos[k] = i
			}
		}
	}
}

// lineReachable computes, for a 10-bit line occupancy (bit i = square i of
// the line occupied) and a slider at line-position pos, the reachable
// squares (stopping before the nearest blocker each direction; Barca has
// no captures, so an occupied square itself is never reachable).
func lineReachable(occ uint16, pos int) uint16 {
	var reach uint16
	for i := pos - 1; i >= 0; i-- {
		if occ&(1<<uint(i)) != 0 {
			break
		}
		reach |= 1 << uint(i)
	}
	for i := pos + 1; i < types.Dim; i++ {
		if occ&(1<<uint(i)) != 0 {
			break
		}
		reach |= 1 << uint(i)
	}
	return reach
}

func initSightTables() {
	for occ := 0; occ < 1024; occ++ {
		for pos := 0; pos < types.Dim; pos++ {
			reach := lineReachable(uint16(occ), pos)
			var rowLine, fileLine Bitboard100
			for c := 0; c < types.Dim; c++ {
				if reach&(1<<uint(c)) != 0 {
					rowLine.Set(types.MakeSquare(0, c))
				}
			}
			rowSight[occ][pos] = rowLine.StretchRow()
			for r := 0; r < types.Dim; r++ {
				if reach&(1<<uint(r)) != 0 {
					fileLine.Set(types.MakeSquare(r, 0))
				}
			}
			fileSight[occ][pos] = fileLine.StretchFile()
		}
	}
}

// RowSight and FileSight expose the precomputed tables to internal/position.
func RowSight(occIndex int, pos int) Bitboard100 {
	return rowSight[occIndex&1023][pos]
}

func FileSight(occIndex int, pos int) Bitboard100 {
	return fileSight[occIndex&1023][pos]
}

// DiagReachable/AntidiagReachable compute sliding reachability along a
// diagonal/antidiagonal by scanning the (short, <=10-square) line list
// directly; they do not use the row/file sight tables.
func DiagReachable(occ Bitboard100, sq types.Square) Bitboard100 {
	return reachableOnLine(occ, DiagSquares[sq], DiagPos[sq])
}

func AntidiagReachable(occ Bitboard100, sq types.Square) Bitboard100 {
	return reachableOnLine(occ, AntidiagSquares[sq], AntidiagPos[sq])
}

func reachableOnLine(occ Bitboard100, line []types.Square, pos int) Bitboard100 {
	var result Bitboard100
	for i := pos - 1; i >= 0; i-- {
		if occ.Has(line[i]) {
			break
		}
		result.Set(line[i])
	}
	for i := pos + 1; i < len(line); i++ {
		if occ.Has(line[i]) {
			break
		}
		result.Set(line[i])
	}
	return result
}

// zobristSeed keeps Zobrist key generation reproducible across runs.
const zobristSeed = 20240130

func initZobrist() {
	rnd := rand.New(rand.NewSource(zobristSeed))
	for herd := 0; herd < 8; herd++ {
		for k := 0; k < types.SqLength; k++ {
			Zobrist[herd][k] = randomBb(rnd)
		}
	}
	SideToggle = randomBb(rnd)
}

func randomBb(rnd *rand.Rand) Bitboard100 {
	return Bitboard100{Lo: rnd.Uint64(), Hi: rnd.Uint64() & hiMask}
}
