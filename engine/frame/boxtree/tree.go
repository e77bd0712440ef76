package boxtree

import (
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame/layout"
)

// Walk visits the tree rooted at n top-down, parents before children and
// siblings in layout order. If visit returns false, the children of the
// visited node are skipped.
func Walk(n *Node, visit func(node *Node, depth int) bool) {
	walk(n, 0, visit)
}

func walk(n *Node, depth int, visit func(*Node, int) bool) {
	if n == nil || !visit(n, depth) {
		return
	}
	for _, ch := range n.children {
		walk(ch, depth+1, visit)
	}
}

// Find returns the first node with a given ID, in Walk order.
// If no such node exists, an error wrapping ErrNoSuchNode is returned.
func Find(root *Node, id string) (*Node, error) {
	var found *Node
	Walk(root, func(n *Node, _ int) bool {
		if found == nil && n.ID == id {
			found = n
		}
		return found == nil
	})
	if found == nil {
		return nil, core.WrapError(ErrNoSuchNode, core.EMISSING, "no node with id %q", id)
	}
	return found, nil
}

// HitTest returns the deepest node whose rounded rectangle contains p.
// Children are painted on top of their parents and later siblings on top of
// earlier ones, so the topmost node in paint order wins. Children may overflow
// their parent and are tested even if the parent is missed. If no node is
// hit, nil is returned.
//
// HitTest relies on results computed by Layout.
func HitTest(root *Node, p dimen.Vector2) *Node {
	if root == nil {
		return nil
	}
	for i := len(root.children) - 1; i >= 0; i-- {
		if hit := HitTest(root.children[i], p); hit != nil {
			return hit
		}
	}
	if layout.HitTest(p, root.Result) {
		return root
	}
	return nil
}

// Extent returns the smallest rectangle containing the layout rectangles of
// all nodes of the tree rooted at root, including overflowing ones.
func Extent(root *Node) dimen.RectF {
	if root == nil {
		return dimen.RectF{}
	}
	r := root.Result.Rect
	Walk(root, func(n *Node, _ int) bool {
		r = r.Union(n.Result.Rect)
		return true
	})
	return r
}
