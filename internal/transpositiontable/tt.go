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

// Package transpositiontable implements the fixed-size, power-of-two Zobrist
// hash table and its accompanying per-bucket repetition chains.
package transpositiontable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/barca/internal/bitboard"
	"github.com/frankkopp/barca/internal/logging"
	"github.com/frankkopp/barca/internal/types"
)

var log = logging.GetLog("transpositiontable")
var out = message.NewPrinter(language.German)

// Stats tracks table usage counters, surfaced through Hashfull/String.
type Stats struct {
	Puts       uint64
	Updates    uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// chainNode is one link of a bucket's repetition chain: every position
// (played-game history and current search path) whose reduced hash lands in
// this bucket, regardless of full-key collisions.
type chainNode struct {
	key  bitboard.Bitboard100
	next *chainNode
}

// Table is the fixed-size transposition table plus its parallel repetition
// chains, one chain head per bucket.
type Table struct {
	entries []Entry
	chains  []*chainNode
	mask    uint64
	Stats   Stats
}

// NewTable allocates a table whose entry count is the number of entries
// estimated to fit in sizeMb megabytes, rounded up to a power of two.
func NewTable(sizeMb int) *Table {
	t := &Table{}
	t.Resize(sizeMb)
	return t
}

// Resize reallocates the table (clearing it) with the number of entries
// estimated to fit in sizeMb megabytes, rounded up to a power of two, so the
// allocation can exceed sizeMb.
func (t *Table) Resize(sizeMb int) {
	const entrySize = 40 // bytes-per-Entry estimate used for sizing; the struct itself is larger
	numEntries := (sizeMb * 1024 * 1024) / entrySize
	size := uint64(1)
	for size < uint64(numEntries) && size < (1<<30) {
		size <<= 1
	}
	if size == 0 {
		size = 1
	}
	t.entries = make([]Entry, size)
	t.chains = make([]*chainNode, size)
	t.mask = size - 1
	t.Stats = Stats{}
	log.Infof("transposition table resized to %s entries (%d MB requested)",
		out.Sprintf("%d", size), sizeMb)
}

// hash reduces a 100-bit key to a bucket index as key & (table length - 1);
// every probe still compares the full stored Key before trusting a hit.
func (t *Table) hash(key bitboard.Bitboard100) uint64 {
	return key.Lo & t.mask
}

// Len returns the number of entry slots.
func (t *Table) Len() int { return len(t.entries) }

// Clear zeroes all entries, stats and repetition chains.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
		t.chains[i] = nil
	}
	t.Stats = Stats{}
}

// AgeEntries decays the stored depth of every non-empty entry by one, so
// that positions left over from an earlier search lose the replacement race
// against fresh results more readily. Sequential: spec §5 mandates a
// single-threaded engine, so there is no goroutine pool here aging buckets
// in parallel.
func (t *Table) AgeEntries() {
	for i := range t.entries {
		if t.entries[i].IsEmpty() {
			continue
		}
		if t.entries[i].Depth > 0 {
			t.entries[i].Depth--
		}
	}
}

// Hashfull returns, in permille, how many of the first 1000 slots are in use
// — a cheap, representative sample rather than a full scan.
func (t *Table) Hashfull() int {
	n := len(t.entries)
	if n == 0 {
		return 0
	}
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if !t.entries[i].IsEmpty() {
			used++
		}
	}
	return used * 1000 / sample
}

// Put stores a search result, applying the replacement policy: an existing
// Exact entry is never overwritten by a non-Exact one; otherwise an existing
// non-empty entry is kept when existing.Depth+existing.FoundAt is at least
// newDepth+gamePly (this weights depth and game-ply equally, which is an
// unusual but deliberately preserved policy). Mate-magnitude values are
// stored adjusted relative to the search root (rootDist plies from it) so
// that shorter mates look better when retrieved from a different root.
func (t *Table) Put(key bitboard.Bitboard100, depth int, flag Flag, value types.Value, move types.Move, gamePly int, rootDist int) {
	idx := t.hash(key)
	existing := &t.entries[idx]
	t.Stats.Puts++

	if !existing.IsEmpty() && existing.Key == key {
		t.Stats.Updates++
	} else if !existing.IsEmpty() {
		t.Stats.Collisions++
	}

	if existing.Flag == FlagExact && flag != FlagExact {
		return
	}
	if !existing.IsEmpty() && existing.Depth+existing.FoundAt >= depth+gamePly {
		return
	}

	if existing.IsEmpty() || existing.Key != key {
		t.Stats.Overwrites++
	}
	storedValue := value
	if value.IsMate() {
		if value > 0 {
			storedValue = value + types.Value(rootDist)
		} else {
			storedValue = value - types.Value(rootDist)
		}
	}
	*existing = Entry{Key: key, Move: move, Value: storedValue, Depth: depth, Flag: flag, FoundAt: gamePly}
}

// ProbeResult is returned by Probe. Found is false when the stored key does
// not match (a miss); UsableValue is true only when Value is a value the
// caller may return directly (an Exact/Static hit, or an Alpha/Beta cutoff).
type ProbeResult struct {
	Found       bool
	UsableValue bool
	Value       types.Value
	MoveHint    types.Move
	Flag        Flag
	Depth       int
}

// Probe looks up key. If the stored entry is deep enough, it may resolve
// directly to a usable value (Exact/Static values, or Alpha/Beta cutoffs
// against the given window); otherwise, if the stored flag is Exact or Beta,
// its move is returned as an ordering hint.
func (t *Table) Probe(key bitboard.Bitboard100, depth int, alpha, beta types.Value, rootDist int) ProbeResult {
	t.Stats.Probes++
	e := &t.entries[t.hash(key)]
	if e.IsEmpty() || e.Key != key {
		t.Stats.Misses++
		return ProbeResult{}
	}
	t.Stats.Hits++

	result := ProbeResult{Found: true, MoveHint: e.Move, Flag: e.Flag, Depth: e.Depth}
	if e.Depth >= depth {
		v := adjustForRootDistance(e.Value, rootDist)
		switch e.Flag {
		case FlagExact, FlagStatic:
			result.UsableValue = true
			result.Value = v
			return result
		case FlagAlpha:
			if v <= alpha {
				result.UsableValue = true
				result.Value = alpha
				return result
			}
		case FlagBeta:
			if v >= beta {
				result.UsableValue = true
				result.Value = beta
				return result
			}
		}
	}
	if e.Flag != FlagExact && e.Flag != FlagBeta {
		result.MoveHint = types.MoveNone
	}
	return result
}

func adjustForRootDistance(v types.Value, rootDist int) types.Value {
	if !v.IsMate() {
		return v
	}
	if v > 0 {
		return v - types.Value(rootDist)
	}
	return v + types.Value(rootDist)
}

// GhStore appends key to the repetition chain of its bucket.
func (t *Table) GhStore(key bitboard.Bitboard100) {
	idx := t.hash(key)
	node := &chainNode{key: key}
	if t.chains[idx] == nil {
		t.chains[idx] = node
		return
	}
	tail := t.chains[idx]
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = node
}

// GhRemove removes the first node matching key from its bucket's chain.
func (t *Table) GhRemove(key bitboard.Bitboard100) {
	idx := t.hash(key)
	head := t.chains[idx]
	if head == nil {
		return
	}
	if head.key == key {
		t.chains[idx] = head.next
		return
	}
	prev := head
	for n := head.next; n != nil; n = n.next {
		if n.key == key {
			prev.next = n.next
			return
		}
		prev = n
	}
}

// GhMatch reports whether key already appears in its bucket's repetition
// chain. At the search root (rootDist 0) the initial position never counts
// as its own repetition. Reduced-hash collisions in the chain are not
// filtered before the full-key comparison; correctness relies solely on
// comparing the full key at each node.
func (t *Table) GhMatch(key bitboard.Bitboard100, rootDist int) bool {
	if rootDist == 0 {
		return false
	}
	for n := t.chains[t.hash(key)]; n != nil; n = n.next {
		if n.key == key {
			return true
		}
	}
	return false
}

// String renders a human-readable summary of table usage.
func (t *Table) String() string {
	return out.Sprintf(
		"TT size=%d hashfull=%d‰ puts=%d updates=%d collisions=%d overwrites=%d probes=%d hits=%d misses=%d",
		len(t.entries), t.Hashfull(), t.Stats.Puts, t.Stats.Updates, t.Stats.Collisions,
		t.Stats.Overwrites, t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}
