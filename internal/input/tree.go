package input

import (
	"fmt"

	"github.com/ja-he/foldcal/internal/control/action"
)

// Help maps key sequences (in config notation) to action explanations.
type Help = map[string]string

// Node is a node in a Tree.
// It has either children or an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// NewNode returns a pointer to a new intermediate node without an action.
func NewNode() *Node {
	return &Node{Children: make(map[Key]*Node)}
}

// NewLeaf returns a pointer to a new action leaf without children.
func NewLeaf(a action.Action) *Node {
	return &Node{Action: a}
}

// Child returns the child node for the given Key or nil.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// GetHelp returns the help for all sequences below this node.
func (n *Node) GetHelp() Help {
	result := Help{}
	if n.Action != nil {
		result[""] = n.Action.Explain()
		return result
	}
	for k, c := range n.Children {
		for partial, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+partial] = explanation
		}
	}
	return result
}

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-g     -> action1          "gg" -> action1
//	+-t     -> action2          "gt" -> action2
//	q       -> action3          "q"  -> action3
type Tree struct {
	Root    *Node
	Current *Node
}

// ConstructInputTree constructs a Tree for the given mappings of input
// sequence strings to actions.
// A mapping whose sequence is a prefix of another's is an error, as is an
// invalid keyspec.
func ConstructInputTree(spec map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()

	for mapping, a := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec '%s': %w", mapping, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped")
		}

		current := root
		for i, key := range sequence {
			if current.Action != nil {
				return nil, fmt.Errorf("keyspec '%s' extends a shorter mapped sequence", mapping)
			}
			next, ok := current.Children[key]
			if !ok {
				if i == len(sequence)-1 {
					next = NewLeaf(a)
				} else {
					next = NewNode()
				}
				current.Children[key] = next
			} else if i == len(sequence)-1 {
				return nil, fmt.Errorf("keyspec '%s' conflicts with another mapping", mapping)
			}
			current = next
		}
	}

	return &Tree{Root: root, Current: root}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{Root: root, Current: root}
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the tree performed an
// action or advanced into a partial sequence.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		next.Action.Do()
		t.Current = t.Root
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether the tree holds partial input, in which case
// it should take priority over other processors.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// GetHelp returns the help for the whole tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}
