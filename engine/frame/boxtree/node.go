package boxtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/flowbox/engine/frame/layout"
	"github.com/npillmayer/flowbox/engine/style"
)

// ErrNullChild is flagged if a nil child is added to a node.
var ErrNullChild = errors.New("child node is null")

// ErrNoSuchNode is flagged if a node cannot be found. Errors wrapping it carry
// error code core.EMISSING.
var ErrNoSuchNode = errors.New("no such node")

// ErrCycle is flagged if adding a child would create a cycle.
var ErrCycle = errors.New("node would become its own ancestor")

// Node is a UI element within a box tree.
type Node struct {
	ID      string                  // identifies the node for style sheets and queries
	Info    frame.ElementLayoutInfo // layout request of the element
	Padding frame.Thickness         // inside of the element, reduces the content area
	Flow    frame.Flow              // how to line up the element's children
	Hover   style.Style             // overlay for pseudo-state hover
	Active  style.Style             // overlay for pseudo-state active
	State   style.PseudoState       // current pseudo-state of the element
	Result  layout.LayoutResult     // computed by Layout

	parent   *Node
	children []*Node
}

// NewNode creates a node with default layout info: it will fill its parent's
// content area.
func NewNode(id string) *Node {
	return &Node{
		ID:   id,
		Info: frame.DefaultElementLayoutInfo(),
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("#%s", n.ID)
}

// Parent returns the parent node of n, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of n, in layout order.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// AppendChild appends a child node as the last child of n. If child already is
// a child of n, it is moved to the end.
// It returns the child.
func (n *Node) AppendChild(child *Node) *Node {
	at := len(n.children)
	if child != nil && child.parent == n {
		at--
	}
	if err := n.AddChild(child, at); err != nil {
		tracer().Errorf(err.Error())
	}
	return child
}

// AddChild inserts a child node at position at. If child is already part of a
// tree, it is detached from its former parent; at then denotes the position
// after detaching. If an error is returned, the tree is unchanged.
//
// A node cannot become a child of itself or of one of its descendants
// (ErrCycle).
func (n *Node) AddChild(child *Node, at int) error {
	if child == nil {
		return ErrNullChild
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return core.WrapError(ErrCycle, core.EINVALID, "cannot add %v to %v", child, n)
		}
	}
	size := len(n.children)
	if child.parent == n {
		size--
	}
	if at < 0 || at > size {
		return core.Error(core.EINVALID, "cannot insert child at position %d of %d", at, size)
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = child
	child.parent = n
	return nil
}

func (n *Node) removeChild(child *Node) {
	for i, ch := range n.children {
		if ch == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// ApplyStyle sets layout properties of n from a style. Properties not set in
// s remain unchanged.
func (n *Node) ApplyStyle(s style.Style) {
	n.Info = s.Apply(n.Info)
	n.Padding = s.Padding.Or(n.Padding)
	n.Flow = s.Flow.Or(n.Flow)
}

// ApplyRules sets the base style and the pseudo-state overlays of n.
func (n *Node) ApplyRules(r style.Rules) {
	n.ApplyStyle(r.Base)
	n.Hover = r.Hover
	n.Active = r.Active
}

// ApplySheet applies the rules of a style sheet to all nodes of the tree
// rooted at n, matching node IDs.
func (n *Node) ApplySheet(sheet style.Sheet) {
	Walk(n, func(node *Node, _ int) bool {
		node.ApplyRules(sheet.Rules(node.ID))
		return true
	})
}

// Effective returns the layout info, padding and flow of n with the overlays
// for its current pseudo-state applied. Hover is applied before active.
func (n *Node) Effective() (frame.ElementLayoutInfo, frame.Thickness, frame.Flow) {
	if n.State == style.Normal {
		return n.Info, n.Padding, n.Flow
	}
	overlay := style.Rules{Hover: n.Hover, Active: n.Active}.Resolve(n.State)
	return overlay.Apply(n.Info), overlay.Padding.Or(n.Padding), overlay.Flow.Or(n.Flow)
}
