/*
Package trie implements the compact two-array trie the suggestion
engine walks: a byte array where each node begins with a length byte
followed by that many child bytes, paired with an index array holding
per-byte child offsets or terminal word-flags words.

A child byte of zero marks a terminal. A node may hold several zero
children when the same prefix terminates with different flag sets
(e.g. a word and its KEEPCAP variant).
*/
package trie

// WordFlags is the 32-bit word carried by a terminal child: region bits
// in the high 16, the compound-flag byte in bits 24-31, and the low
// bits giving WF_* options.
type WordFlags uint32

const (
	WFKeepCap WordFlags = 1 << iota
	WFAllCap
	WFOneCap
	WFRare
	WFBanned
	WFNoSuggest
	WFNeedComp
	WFRarePfx
)

const (
	regionShift  = 16
	regionMask   = 0xFFFF << regionShift
	compFlagMask = 0xFF
	compFlagBit  = 24
)

// Region returns the region bitmask carried by a terminal's flags.
func (f WordFlags) Region() uint16 { return uint16((uint32(f) & regionMask) >> regionShift) }

// WithRegion returns f with its region bits replaced.
func (f WordFlags) WithRegion(region uint16) WordFlags {
	return WordFlags((uint32(f) &^ uint32(regionMask)) | uint32(region)<<regionShift)
}

// CompoundFlag returns the compound-flag byte carried by a terminal's flags.
func (f WordFlags) CompoundFlag() byte { return byte((uint32(f) >> compFlagBit) & compFlagMask) }

// WithCompoundFlag returns f with its compound-flag byte replaced.
func (f WordFlags) WithCompoundFlag(flag byte) WordFlags {
	return WordFlags((uint32(f) &^ (compFlagMask << compFlagBit)) | uint32(flag)<<compFlagBit)
}

// Has reports whether f carries every bit in want.
func (f WordFlags) Has(want WordFlags) bool { return f&want == want }

// Trie is a read-only, immutable compact trie. Zero value is an empty
// trie (no words).
type Trie struct {
	Byts []byte
	Idxs []uint32
	// Root is the node offset to start descent from. Not necessarily 0:
	// a bottom-up builder writes children before parents.
	Root uint32
}

// NodeLen returns the number of children (including zero-byte
// terminals) of the node at offset n.
func (t *Trie) NodeLen(n uint32) int {
	if t == nil || int(n) >= len(t.Byts) {
		return 0
	}
	return int(t.Byts[n])
}

// Terminals returns the WordFlags of every zero-byte (terminal) child
// of the node at offset n. A node can carry more than one when the
// same spelling terminates with different flag sets.
func (t *Trie) Terminals(n uint32) []WordFlags {
	l := t.NodeLen(n)
	var out []WordFlags
	for i := 1; i <= l; i++ {
		if t.Byts[n+uint32(i)] != 0 {
			break // zero bytes always sort first
		}
		out = append(out, WordFlags(t.Idxs[n+uint32(i)]))
	}
	return out
}

// Descend finds the child reached from node n by byte b (b must be
// non-zero; use Terminals for zero-byte children). Linear scan,
// correct for any node size but intended for small nodes.
func (t *Trie) Descend(n uint32, b byte) (child uint32, ok bool) {
	l := t.NodeLen(n)
	for i := 1; i <= l; i++ {
		cb := t.Byts[n+uint32(i)]
		if cb == 0 {
			continue
		}
		if cb == b {
			return t.Idxs[n+uint32(i)], true
		}
		if cb > b {
			break // remaining bytes are sorted ascending
		}
	}
	return 0, false
}

// DescendBinary is Descend implemented with a binary search over the
// node's sorted non-zero children, for correctness on large nodes
// (find_keepcap_word, spec.md §4.1).
func (t *Trie) DescendBinary(n uint32, b byte) (child uint32, ok bool) {
	l := t.NodeLen(n)
	// Skip the leading run of zero-byte terminal slots.
	lo := 1
	for lo <= l && t.Byts[n+uint32(lo)] == 0 {
		lo++
	}
	hi := l
	for lo <= hi {
		mid := (lo + hi) / 2
		cb := t.Byts[n+uint32(mid)]
		switch {
		case cb == b:
			return t.Idxs[n+uint32(mid)], true
		case cb < b:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// EnumerateChildren calls fn for every non-zero-byte child of node n,
// in ascending byte order, stopping early if fn returns false.
func (t *Trie) EnumerateChildren(n uint32, fn func(b byte, child uint32) bool) {
	l := t.NodeLen(n)
	for i := 1; i <= l; i++ {
		b := t.Byts[n+uint32(i)]
		if b == 0 {
			continue
		}
		if !fn(b, t.Idxs[n+uint32(i)]) {
			return
		}
	}
}

// Empty reports whether the trie carries no words at all.
func (t *Trie) Empty() bool { return t == nil || len(t.Byts) == 0 }
