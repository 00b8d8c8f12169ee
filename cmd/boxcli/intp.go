package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/widgetbox/backend/platform"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
	"github.com/npillmayer/widgetbox/engine/frame/framedebug"
	"github.com/npillmayer/widgetbox/engine/frame/layout"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	tree     *frame.Tree
	registry *platform.Registry
	root     frame.Handle
	cursor   frame.Handle // container receiving new nodes
	selected frame.Handle // target of set, get, open, close and drag
}

// NewIntp creates an interpreter with an empty layout tree. Nodes get native
// handles from a registry of their own when they are laid out.
func NewIntp(metrics frame.Metrics) *Intp {
	intp := &Intp{
		tree:     frame.NewTree(metrics),
		registry: platform.NewRegistry(0),
		root:     frame.NoHandle,
		cursor:   frame.NoHandle,
		selected: frame.NoHandle,
	}
	intp.tree.SetNativeFactory(intp.registry)
	return intp
}

// Op codes of commands.
const (
	QUIT int = iota
	HELP
	CONTAINER
	LEAF
	TOGGLE
	FILL
	SET
	GET
	SELECT
	UP
	LAYOUT
	SHOW
	DOT
	OPEN
	CLOSE
	DRAG
)

// Command is a parsed input line.
type Command struct {
	code int
	kind string // container kind for CONTAINER
	name string
	args []string
	w, h int
}

var constructors = map[string]func(*frame.Tree, string) frame.Handle{
	"hbox":     layout.NewHbox,
	"vbox":     layout.NewVbox,
	"grid":     layout.NewGridBox,
	"multibox": layout.NewMultiBox,
	"split":    layout.NewSplit,
	"sbox":     layout.NewSbox,
	"zbox":     layout.NewZbox,
	"cbox":     layout.NewCbox,
	"radio":    layout.NewRadio,
	"tabs":     layout.NewTabs,
	"frame": func(t *frame.Tree, name string) frame.Handle {
		return layout.NewFrame(t, name, "")
	},
	"expander": func(t *frame.Tree, name string) frame.Handle {
		return layout.NewExpander(t, name, "")
	},
}

func parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("empty command")
	}
	word := strings.ToLower(fields[0])
	args := fields[1:]
	cmd := &Command{args: args}
	tracer().Debugf("parse command = %v", fields)
	if _, ok := constructors[word]; ok {
		cmd.code, cmd.kind = CONTAINER, word
		cmd.name = getOptArg(args, 0, word)
		return cmd, nil
	}
	var err error
	switch word {
	case "quit", "exit":
		cmd.code = QUIT
	case "help", "?":
		cmd.code = HELP
	case "leaf", "toggle":
		cmd.code = LEAF
		if word == "toggle" {
			cmd.code = TOGGLE
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("usage: %s WxH [name]", word)
		}
		if cmd.w, cmd.h, err = parseSize(args[0]); err != nil {
			return nil, err
		}
		cmd.name = getOptArg(args, 1, word)
	case "fill":
		cmd.code = FILL
		cmd.name = getOptArg(args, 0, word)
	case "set":
		if len(args) < 2 {
			return nil, errors.New("usage: set NAME VALUE")
		}
		cmd.code = SET
		cmd.name = args[0]
		cmd.args = []string{strings.Join(args[1:], " ")}
	case "get":
		if len(args) != 1 {
			return nil, errors.New("usage: get NAME")
		}
		cmd.code = GET
		cmd.name = args[0]
	case "select":
		if len(args) != 1 {
			return nil, errors.New("usage: select N")
		}
		cmd.code = SELECT
		if cmd.w, err = strconv.Atoi(args[0]); err != nil {
			return nil, fmt.Errorf("handle not numeric: %v", args[0])
		}
	case "up":
		cmd.code = UP
	case "layout":
		cmd.code = LAYOUT
		if len(args) > 0 {
			if cmd.w, cmd.h, err = parseSize(args[0]); err != nil {
				return nil, err
			}
		}
	case "show":
		cmd.code = SHOW
	case "dot":
		if len(args) != 1 {
			return nil, errors.New("usage: dot FILE")
		}
		cmd.code = DOT
		cmd.name = args[0]
	case "open":
		cmd.code = OPEN
	case "close":
		cmd.code = CLOSE
	case "drag":
		if len(args) != 2 {
			return nil, errors.New("usage: drag DX DY")
		}
		cmd.code = DRAG
		if cmd.w, err = strconv.Atoi(args[0]); err == nil {
			cmd.h, err = strconv.Atoi(args[1])
		}
		if err != nil {
			return nil, fmt.Errorf("drag offsets not numeric: %v", args)
		}
	default:
		return nil, fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
	return cmd, nil
}

// Execute runs a command. It returns true if the user asked to quit.
func (intp *Intp) Execute(cmd *Command) (bool, error) {
	tracer().Debugf("cmd = %+v", cmd)
	t := intp.tree
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case CONTAINER:
		h := constructors[cmd.kind](t, cmd.name)
		if err := intp.add(h); err != nil {
			return false, err
		}
		if e, ok := t.Node(h).Policy().(*layout.Expander); ok {
			e.Scheduler = sleepScheduler{}
		}
		intp.cursor = h
		pterm.Printfln("%v created", t.Node(h))
	case LEAF, TOGGLE, FILL:
		var h frame.Handle
		switch cmd.code {
		case LEAF:
			h = t.NewLeaf(cmd.name, cmd.w, cmd.h)
		case TOGGLE:
			h = layout.NewToggle(t, cmd.name, cmd.w, cmd.h)
		default:
			h = layout.NewFill(t, cmd.name)
		}
		if err := intp.add(h); err != nil {
			return false, err
		}
		pterm.Printfln("%v created", t.Node(h))
	case SET:
		if err := intp.checkSelection(); err != nil {
			return false, err
		}
		if err := layout.SetAttribute(t, intp.selected, cmd.name, cmd.args[0]); err != nil {
			return false, err
		}
	case GET:
		if err := intp.checkSelection(); err != nil {
			return false, err
		}
		v, err := layout.Attribute(t, intp.selected, cmd.name)
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s = %s", strings.ToUpper(cmd.name), v)
	case SELECT:
		n := t.Node(frame.Handle(cmd.w))
		if n == nil {
			return false, fmt.Errorf("no node with handle %d", cmd.w)
		}
		intp.selected = n.Handle()
		if n.IsContainer() {
			intp.cursor = n.Handle()
		}
	case UP:
		p := t.Parent(intp.cursor)
		if p == nil {
			return false, errors.New("already at top of tree")
		}
		intp.cursor, intp.selected = p.Handle(), p.Handle()
	case LAYOUT:
		if intp.root == frame.NoHandle {
			return false, errors.New("tree is empty")
		}
		if err := t.Realize(intp.root); err != nil {
			return false, err
		}
		if err := t.Layout(intp.root, cmd.w, cmd.h); err != nil {
			return false, err
		}
		return false, intp.show()
	case SHOW:
		return false, intp.show()
	case DOT:
		return false, intp.dot(cmd.name)
	case OPEN, CLOSE:
		if err := intp.checkSelection(); err != nil {
			return false, err
		}
		e, ok := t.Node(intp.selected).Policy().(*layout.Expander)
		if !ok {
			return false, errors.New("selected node is not an expander")
		}
		if cmd.code == OPEN {
			return false, e.Open(t, intp.selected)
		}
		return false, e.Close(t, intp.selected)
	case DRAG:
		return false, intp.drag(cmd.w, cmd.h)
	}
	return false, nil
}

// add appends a new node at the cursor. The first node becomes the root.
func (intp *Intp) add(h frame.Handle) error {
	if intp.root == frame.NoHandle {
		intp.root, intp.cursor, intp.selected = h, h, h
		return nil
	}
	if err := intp.tree.Append(intp.cursor, h); err != nil {
		_ = intp.tree.Destroy(h)
		return err
	}
	intp.selected = h
	return nil
}

func (intp *Intp) checkSelection() error {
	if intp.tree.Node(intp.selected) == nil {
		return errors.New("no node selected")
	}
	return nil
}

func (intp *Intp) drag(dx, dy int) error {
	if err := intp.checkSelection(); err != nil {
		return err
	}
	t := intp.tree
	switch p := t.Node(intp.selected).Policy().(type) {
	case *layout.Split:
		p.DragStart()
		if err := p.DragMove(t, intp.selected, dx, dy); err != nil {
			return err
		}
		if err := p.DragEnd(t, intp.selected); err != nil {
			return err
		}
		pterm.Printfln("split value is now %v", p.Value)
	case *layout.Sbox:
		if err := p.Drag(t, intp.selected, dx, dy); err != nil {
			return err
		}
	default:
		return errors.New("selected node is neither split nor sbox")
	}
	return intp.show()
}

// rows returns the geometry of the tree as table rows, one per node.
func (intp *Intp) rows() [][]string {
	data := [][]string{{"", "handle", "node", "natural", "current", "position", "expand", "native"}}
	if intp.root == frame.NoHandle {
		return data
	}
	t := intp.tree
	t.Walk(intp.root, func(n *frame.Node) bool {
		depth := 0
		for p := t.Parent(n.Handle()); p != nil; p = t.Parent(p.Handle()) {
			depth++
		}
		mark := ""
		if n.Handle() == intp.cursor {
			mark = "*"
		}
		if n.Handle() == intp.selected {
			mark += ">"
		}
		label := strings.Repeat("  ", depth) + n.Kind().String() + " " + n.Name
		if n.Hidden {
			label += " (hidden)"
		}
		data = append(data, []string{
			mark,
			strconv.Itoa(int(n.Handle())),
			label,
			fmt.Sprintf("%dx%d", n.NaturalWidth, n.NaturalHeight),
			fmt.Sprintf("%dx%d", n.CurrentWidth, n.CurrentHeight),
			fmt.Sprintf("%d,%d", n.X, n.Y),
			n.Expand.String(),
			strconv.FormatUint(uint64(n.Native), 10),
		})
		return true
	})
	return data
}

func (intp *Intp) show() error {
	return pterm.DefaultTable.WithHasHeader().WithData(intp.rows()).Render()
}

func (intp *Intp) dot(filename string) error {
	if intp.root == frame.NoHandle {
		return errors.New("tree is empty")
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = framedebug.ToGraphViz(intp.tree, intp.root, f); err != nil {
		return err
	}
	pterm.Info.Printfln("layout tree written to %s", filename)
	return nil
}

// sleepScheduler runs an expander animation to its end before returning,
// sleeping between frames.
type sleepScheduler struct{}

func (sleepScheduler) Schedule(interval time.Duration, tick func() bool) {
	for tick() {
		time.Sleep(interval)
	}
}

// parseSize reads "WxH"; unlike attribute values, both components are required.
func parseSize(s string) (int, int, error) {
	size, wok, hok := dimen.ParseSize(s)
	if !wok || !hok {
		return 0, 0, fmt.Errorf("size must be given as WxH: %q", s)
	}
	return size.W, size.H, nil
}

func getOptArg(s []string, inx int, dflt string) string {
	if len(s) > inx {
		return s[inx]
	}
	return dflt
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	hbox|vbox|grid|multibox|split|sbox|zbox|tabs|cbox|radio|frame|expander [name]
	                     create a container at the cursor and move the cursor into it
	leaf WxH [name]      append a leaf with a natural size of WxH
	toggle WxH [name]    append a toggle (for radio containers)
	fill [name]          append a filler
	set NAME VALUE       set an attribute of the selected node
	get NAME             print an attribute of the selected node
	select N             select node N; containers also get the cursor
	up                   move the cursor to the parent container
	layout [WxH]         run a layout pass (0 = natural size) and show the result
	show                 print the geometry of all nodes
	open | close         open or close the selected expander
	drag DX DY           drag the bar of the selected split or sbox
	dot FILE             write the tree in GraphViz DOT format
	quit                 leave the CLI
	`)
}
