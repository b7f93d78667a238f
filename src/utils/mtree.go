package utils

import (
	"fmt"
	"io"
)

const (
	pipe    = "│   "
	tee     = "├── "
	lasttee = "└── "
	blank   = "    "
)

type TreeNode struct {
	Level    int
	Label    string
	Children []*TreeNode
	Parent   *TreeNode
	Left     *TreeNode
	Right    *TreeNode
}

// NewTree returns a root node labelled label.
func NewTree(label string) *TreeNode {
	return &TreeNode{Label: label}
}

// ShowTree writes the tree to w, one node per line. The prefix carries the
// indentation of the ancestors; the tee and lasttee characters tell whether a
// node has a sibling after it.
func (node *TreeNode) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		fmt.Fprintln(w, node.Label)
	} else {
		subFix := lasttee
		if node.Right != nil {
			subFix = tee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Label)

		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += blank
		}
	}

	for _, child := range node.Children {
		child.ShowTree(w, prefix)
	}
}

// AddChild appends a child labelled label and links it to its left sibling.
func (node *TreeNode) AddChild(label string) *TreeNode {
	var pre *TreeNode
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &TreeNode{
		Level:  node.Level + 1,
		Label:  label,
		Parent: node,
		Left:   pre,
	}

	if pre != nil {
		pre.Right = child
	}

	node.Children = append(node.Children, child)
	return child
}
