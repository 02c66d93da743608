package trie

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// Builder compiles a word list into a compact Trie. It stages the
// words in a patricia.Trie (the same radix-trie library the rest of
// this module's ancestry uses for prefix storage) because that gives
// sorted-order enumeration for free; Build then flattens that
// staging structure into the byts[]/idxs[] arrays the walk consumes.
type Builder struct {
	staging *patricia.Trie
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{staging: patricia.NewTrie()}
}

// stagingEntry accumulates every flag set a word was inserted with;
// a word can terminate a path with more than one flag set (e.g. once
// as a KEEPCAP entry and once plain).
type stagingEntry struct {
	flags []WordFlags
}

// Add inserts word with the given flags. Calling Add again for the
// same word appends another terminal rather than replacing the first,
// matching the trie's "a node may contain multiple zero children"
// allowance (spec.md §4.1).
func (b *Builder) Add(word string, flags WordFlags) {
	key := patricia.Prefix(word)
	if item := b.staging.Get(key); item != nil {
		entry := item.(*stagingEntry)
		entry.flags = append(entry.flags, flags)
		return
	}
	b.staging.Insert(key, &stagingEntry{flags: []WordFlags{flags}})
}

// treeNode is the intermediate, pointer-based tree Build flattens
// into the two output arrays. childOrder is NOT re-sorted anywhere:
// it is populated purely from the order patricia.Trie.Visit first
// introduces each byte, which Visit already guarantees is ascending
// (Visit walks the radix trie in sorted-key order, so distinct
// children branching off the same node are necessarily seen smallest
// byte first). flatten trusts that order outright instead of
// recomputing it.
type treeNode struct {
	children   map[byte]*treeNode
	childOrder []byte
	terminals  []WordFlags
}

func newTreeNode() *treeNode {
	return &treeNode{children: make(map[byte]*treeNode)}
}

func (n *treeNode) child(b byte) *treeNode {
	c, ok := n.children[b]
	if !ok {
		c = newTreeNode()
		n.children[b] = c
		n.childOrder = append(n.childOrder, b)
	}
	return c
}

// Build flattens every word staged via Add into a Trie. The staging
// structure is a patricia.Trie precisely so this walk is a single
// Visit over the radix trie's own sorted traversal, rather than a
// word list that would need sorting separately before insertion order
// could be trusted.
func (b *Builder) Build() *Trie {
	root := newTreeNode()

	b.staging.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		entry := item.(*stagingEntry)
		node := root
		for _, ch := range []byte(prefix) {
			node = node.child(ch)
		}
		node.terminals = append(node.terminals, entry.flags...)
		return nil
	})

	out := &Trie{}
	out.Root = flatten(root, out)
	return out
}

// flatten writes node's children (recursively, so their offsets are
// known) and then node itself, returning node's own offset. Because
// children are written first, the root ends up at the highest offset,
// not necessarily 0 -- callers must use Trie.Root, never assume 0.
// Child order comes straight from node.childOrder (patricia's own
// sorted Visit order) -- see treeNode's doc comment.
func flatten(node *treeNode, out *Trie) uint32 {
	childOffsets := make([]uint32, len(node.childOrder))
	for i, cb := range node.childOrder {
		childOffsets[i] = flatten(node.children[cb], out)
	}

	myOffset := uint32(len(out.Byts))
	total := len(node.terminals) + len(node.childOrder)
	out.Byts = append(out.Byts, byte(total))
	out.Idxs = append(out.Idxs, 0) // alignment slot for the length byte itself

	for _, flags := range node.terminals {
		out.Byts = append(out.Byts, 0)
		out.Idxs = append(out.Idxs, uint32(flags))
	}
	for i, cb := range node.childOrder {
		out.Byts = append(out.Byts, cb)
		out.Idxs = append(out.Idxs, childOffsets[i])
	}
	return myOffset
}
