package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jetjson"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file|-]",
		Short: "Browse a JSON document interactively",
		Long: `view parses a JSON document and opens a terminal tree browser over it.

Keys: up/down or j/k move, enter or space toggles a container,
right/l expands, left/h collapses, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			ctx := jetjson.NewContext()
			defer ctx.Close()

			root, err := ctx.Parse(data)
			if err != nil {
				return err
			}

			tree, err := buildTree("", root)
			if err != nil {
				return err
			}

			tree.expanded = true

			_, err = tea.NewProgram(newBrowser(tree)).Run()

			return err
		},
	}
}

const previewLimit = 60

// treeNode is one browsable row. The whole tree is materialized up front so
// the parse context can be recycled while the browser runs.
type treeNode struct {
	label    string
	children []*treeNode
	expanded bool
}

// buildTree converts a parsed value into browsable rows. prefix carries the
// member key or element index of the enclosing container.
func buildTree(prefix string, v *jetjson.Value) (*treeNode, error) {
	n := &treeNode{}

	switch {
	case v.IsObject():
		n.label = fmt.Sprintf("%s{%d}", prefix, v.Size())

		for k, member := range v.Fields() {
			key, err := k.Decoded()
			if err != nil {
				return nil, err
			}

			child, err := buildTree(key+": ", member)
			if err != nil {
				return nil, err
			}

			n.children = append(n.children, child)
		}

	case v.IsArray():
		n.label = fmt.Sprintf("%s[%d]", prefix, v.Size())

		i := 0

		for el := range v.Items() {
			child, err := buildTree(fmt.Sprintf("%d: ", i), el)
			if err != nil {
				return nil, err
			}

			n.children = append(n.children, child)
			i++
		}

	case v.IsString():
		dec, err := v.Decoded()
		if err != nil {
			return nil, err
		}

		if len(dec) > previewLimit {
			dec = dec[:previewLimit] + "…"
		}

		n.label = fmt.Sprintf("%s%q", prefix, dec)

	case v.IsNumber():
		n.label = prefix + string(v.Raw())

	case v.IsNull():
		n.label = prefix + "null"

	default:
		b, err := v.Bool()
		if err != nil {
			return nil, err
		}

		n.label = fmt.Sprintf("%s%t", prefix, b)
	}

	return n, nil
}

// visibleRow is a flattened, currently visible tree row.
type visibleRow struct {
	node  *treeNode
	depth int
}

// browser is the Bubble Tea model for the tree view.
type browser struct {
	root   *treeNode
	cursor int
	height int
}

func newBrowser(root *treeNode) *browser {
	return &browser{root: root, height: 24}
}

// Init implements tea.Model.
func (b *browser) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		rows := b.visibleRows()

		if b.cursor >= len(rows) {
			b.cursor = len(rows) - 1
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(rows)-1 {
				b.cursor++
			}
		case "enter", " ":
			n := rows[b.cursor].node
			if len(n.children) > 0 {
				n.expanded = !n.expanded
			}
		case "right", "l":
			rows[b.cursor].node.expanded = true
		case "left", "h":
			rows[b.cursor].node.expanded = false
		}

	case tea.WindowSizeMsg:
		b.height = msg.Height
	}

	return b, nil
}

// View renders the visible window around the cursor.
func (b *browser) View() tea.View {
	rows := b.visibleRows()

	if b.cursor >= len(rows) {
		b.cursor = len(rows) - 1
	}

	height := b.height - 1
	if height < 1 {
		height = 1
	}

	top := 0
	if b.cursor >= height {
		top = b.cursor - height + 1
	}

	end := top + height
	if end > len(rows) {
		end = len(rows)
	}

	var sb strings.Builder

	for i := top; i < end; i++ {
		row := rows[i]

		if i == b.cursor {
			sb.WriteString("> ")
		} else {
			sb.WriteString("  ")
		}

		sb.WriteString(strings.Repeat("  ", row.depth))

		switch {
		case len(row.node.children) == 0:
			sb.WriteString("  ")
		case row.node.expanded:
			sb.WriteString("▾ ")
		default:
			sb.WriteString("▸ ")
		}

		sb.WriteString(row.node.label)
		sb.WriteByte('\n')
	}

	sb.WriteString("\n  q quit · enter toggle · j/k move")

	v := tea.NewView(sb.String())
	v.AltScreen = true

	return v
}

// visibleRows flattens the expanded part of the tree in display order.
func (b *browser) visibleRows() []visibleRow {
	var rows []visibleRow

	var walk func(n *treeNode, depth int)

	walk = func(n *treeNode, depth int) {
		rows = append(rows, visibleRow{node: n, depth: depth})

		if !n.expanded {
			return
		}

		for _, c := range n.children {
			walk(c, depth+1)
		}
	}

	walk(b.root, 0)

	return rows
}
