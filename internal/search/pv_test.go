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

	"github.com/frankkopp/barca/internal/types"
)

func mv(fr, fc, tr, tc int) types.Move {
	return types.CreateMove(types.MakeSquare(fr, fc), types.MakeSquare(tr, tc))
}

func TestPVLinePrependBuildsInOrder(t *testing.T) {
	var child PVLine
	child.SetSingle(mv(1, 1, 2, 2))

	var pv PVLine
	pv.Prepend(mv(0, 0, 1, 1), &child)

	assert.Equal(t, 2, pv.Len())
	assert.Equal(t, mv(0, 0, 1, 1), pv.Move(0))
	assert.Equal(t, mv(1, 1, 2, 2), pv.Move(1))
}

func TestPVLineShiftLeft(t *testing.T) {
	var pv PVLine
	pv.SetSingle(mv(0, 0, 1, 1))
	pv.Append(mv(1, 1, 2, 2))

	pv.ShiftLeft()

	assert.Equal(t, 1, pv.Len())
	assert.Equal(t, mv(1, 1, 2, 2), pv.Move(0))
}

func TestPVLineAppendRespectsCapacity(t *testing.T) {
	var pv PVLine
	for i := 0; i < int(types.MaxLineLen); i++ {
		assert.True(t, pv.Append(mv(0, 0, 0, 0)))
	}
	assert.False(t, pv.Append(mv(0, 0, 0, 0)))
}

func TestPVLineCopyFromIsIndependent(t *testing.T) {
	var a, b PVLine
	a.SetSingle(mv(0, 0, 1, 1))
	b.CopyFrom(&a)
	a.ShiftLeft()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestPVLineUciString(t *testing.T) {
	var pv PVLine
	pv.SetSingle(mv(0, 0, 1, 1))
	pv.Append(mv(1, 1, 2, 2))
	assert.Equal(t, "a1b2 b2c3", pv.UciString())
}
