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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMateBoundary(t *testing.T) {
	assert.True(t, (ValueWin - 1).IsMate())
	assert.True(t, ValueWin.IsMate())
	assert.True(t, (ValueLoss + 1).IsMate())
	assert.False(t, (ValueWin - MaxLineLen - 1).IsMate())
	assert.False(t, Value(0).IsMate())
	assert.False(t, ValueDraw.IsMate())
}

func TestValueStringMateRendering(t *testing.T) {
	assert.Equal(t, "+M1", (ValueWin - 1).String())
	assert.Equal(t, "-M1", (ValueLoss + 1).String())
}

func TestValueStringDecimalRendering(t *testing.T) {
	assert.Equal(t, "1.000", Value(20000).String())
	assert.Equal(t, "-0.500", Value(-10000).String())
}

func TestCreateMoveRoundTrip(t *testing.T) {
	from := MakeSquare(2, 3)
	to := MakeSquare(7, 9)
	m := CreateMove(from, to)
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.True(t, m.IsValid())
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "NoMove", MoveNone.String())
}

func TestMoveStringFormat(t *testing.T) {
	m := CreateMove(MakeSquare(0, 0), MakeSquare(9, 9))
	assert.Equal(t, "a1j10", m.String())
}
