package main

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/flowbox/engine/frame/framedebug"
	"github.com/npillmayer/flowbox/engine/style"
	"github.com/npillmayer/schuko"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	root     *boxtree.Node
	sheet    style.Sheet
	viewport dimen.RectF
	config   boxtree.Config
	laidOut  bool
}

// NewIntp creates an interpreter with layout parameters read from conf.
func NewIntp(conf schuko.Configuration) (*Intp, error) {
	vp, err := boxtree.ViewportFrom(conf, viewportDefault)
	if err != nil {
		return nil, err
	}
	return &Intp{
		viewport: vp,
		config:   boxtree.ConfigFrom(conf),
	}, nil
}

// Command codes
const (
	QUIT int = iota
	HELP
	NODE
	STYLE
	SHEET
	STATE
	VIEWPORT
	SCALE
	LAYOUT
	SHOW
	HIT
	DOT
	INFO
)

var commands = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"node":     NODE,
	"style":    STYLE,
	"sheet":    SHEET,
	"state":    STATE,
	"viewport": VIEWPORT,
	"scale":    SCALE,
	"layout":   LAYOUT,
	"show":     SHOW,
	"hit":      HIT,
	"dot":      DOT,
	"info":     INFO,
}

// Execute interprets a single command line. It returns true if the user
// asked to quit.
func (intp *Intp) Execute(line string) (bool, error) {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	code, ok := commands[strings.ToLower(word)]
	if !ok {
		help()
		return false, core.Error(core.EINVALID, "unknown command %q", word)
	}
	tracer().Infof("command %s(%q)", word, arg)
	var err error
	switch code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case NODE:
		err = intp.addNode(strings.Fields(arg))
	case STYLE:
		id, decls, _ := strings.Cut(arg, " ")
		err = intp.styleNode(id, decls)
	case SHEET:
		err = intp.loadSheet(arg)
	case STATE:
		err = intp.setState(strings.Fields(arg))
	case VIEWPORT:
		var vp dimen.RectF
		if vp, err = boxtree.ParseViewport(arg); err == nil {
			intp.viewport = vp
			intp.laidOut = false
		}
	case SCALE:
		err = intp.setScale(arg)
	case LAYOUT:
		if err = intp.layout(); err == nil {
			err = intp.show()
		}
	case SHOW:
		err = intp.show()
	case HIT:
		err = intp.hit(strings.Fields(arg))
	case DOT:
		err = intp.dot(arg)
	case INFO:
		err = intp.info(arg)
	}
	return false, err
}

func (intp *Intp) addNode(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return core.Error(core.EINVALID, "usage: node <id> [<parent-id>]")
	}
	n := boxtree.NewNode(args[0])
	n.ApplyRules(intp.sheet.Rules(n.ID))
	intp.laidOut = false
	if intp.root == nil {
		if len(args) == 2 {
			return core.Error(core.EMISSING, "tree is empty, cannot find parent #%s", args[1])
		}
		intp.root = n
		pterm.Printfln("%v is the root node", n)
		return nil
	}
	parent := intp.root
	if len(args) == 2 {
		var err error
		if parent, err = boxtree.Find(intp.root, args[1]); err != nil {
			return err
		}
	}
	parent.AppendChild(n)
	pterm.Printfln("%v appended to %v", n, parent)
	return nil
}

func (intp *Intp) styleNode(id, decls string) error {
	n, err := boxtree.Find(intp.root, id)
	if err != nil {
		return err
	}
	s, err := style.ParseDeclarations(decls)
	if err != nil {
		return err
	}
	n.ApplyStyle(s)
	intp.laidOut = false
	pterm.Printfln("%v { %v }", n, s)
	return nil
}

func (intp *Intp) loadSheet(filename string) error {
	text, err := os.ReadFile(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read style sheet %q", filename)
	}
	sheet, err := style.ParseSheet(string(text))
	if err != nil {
		return err
	}
	intp.sheet = sheet
	if intp.root != nil {
		intp.root.ApplySheet(sheet)
	}
	intp.laidOut = false
	tracer().Infof("loaded style sheet %s with rules for %v", filename, sheet.IDs())
	return nil
}

func (intp *Intp) setState(args []string) error {
	if len(args) != 2 {
		return core.Error(core.EINVALID, "usage: state <id> normal|hover|active|hover+active")
	}
	n, err := boxtree.Find(intp.root, args[0])
	if err != nil {
		return err
	}
	state := style.Normal
	for _, s := range strings.Split(strings.ToLower(args[1]), "+") {
		switch s {
		case "normal":
		case "hover":
			state |= style.Hover
		case "active":
			state |= style.Active
		default:
			return core.Error(core.EINVALID, "unknown pseudo-state %q", s)
		}
	}
	n.State = state
	intp.laidOut = false
	return nil
}

func (intp *Intp) setScale(arg string) error {
	s, err := strconv.ParseFloat(arg, 32)
	if err != nil || !(s > 0) {
		return core.Error(core.EINVALID, "scale must be a positive number, is %q", arg)
	}
	intp.config.Scale = float32(s)
	intp.laidOut = false
	return nil
}

func (intp *Intp) layout() error {
	if err := boxtree.Layout(intp.root, intp.viewport, intp.config); err != nil {
		return err
	}
	intp.laidOut = true
	return nil
}

func (intp *Intp) show() error {
	if intp.root == nil {
		return core.Error(core.EMISSING, "tree is empty")
	}
	data := pterm.TableData{{"Node", "Flow", "State", "Rect", "Radius"}}
	boxtree.Walk(intp.root, func(n *boxtree.Node, depth int) bool {
		_, _, flow := n.Effective()
		r := n.Result.BorderRadius
		data = append(data, []string{
			strings.Repeat("  ", depth) + n.String(),
			flow.String(),
			stateString(n.State),
			n.Result.Rect.String(),
			strconv.FormatFloat(float64(r[0]), 'g', -1, 32) + " " +
				strconv.FormatFloat(float64(r[1]), 'g', -1, 32) + " " +
				strconv.FormatFloat(float64(r[2]), 'g', -1, 32) + " " +
				strconv.FormatFloat(float64(r[3]), 'g', -1, 32),
		})
		return true
	})
	if !intp.laidOut {
		pterm.Info.Println("layout is outdated, use 'layout' to refresh")
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	extent := boxtree.Extent(intp.root)
	pterm.Printfln("extent of tree: %v", extent)
	if extent != intp.root.Result.Rect {
		pterm.Info.Println("some nodes overflow the root")
	}
	return nil
}

func (intp *Intp) info(id string) error {
	n, err := boxtree.Find(intp.root, id)
	if err != nil {
		return err
	}
	info, padding, flow := n.Effective()
	pterm.Printfln("%v %s", n, info.DebugString())
	pterm.Printfln("padding=%v, flow=%v, state=%s", padding, flow, stateString(n.State))
	if !n.Hover.IsEmpty() {
		pterm.Printfln(":hover { %v }", n.Hover)
	}
	if !n.Active.IsEmpty() {
		pterm.Printfln(":active { %v }", n.Active)
	}
	return nil
}

func (intp *Intp) hit(args []string) error {
	if len(args) != 2 {
		return core.Error(core.EINVALID, "usage: hit <x> <y>")
	}
	x, errx := strconv.ParseFloat(args[0], 32)
	y, erry := strconv.ParseFloat(args[1], 32)
	if errx != nil || erry != nil {
		return core.Error(core.EINVALID, "coordinates must be numeric: %v", args)
	}
	if !intp.laidOut {
		if err := intp.layout(); err != nil {
			return err
		}
	}
	p := dimen.V(float32(x), float32(y))
	if n := boxtree.HitTest(intp.root, p); n != nil {
		pterm.Printfln("%v hits %v %v", p, n, n.Result)
	} else {
		pterm.Printfln("%v hits nothing", p)
	}
	return nil
}

func (intp *Intp) dot(filename string) error {
	if filename == "" {
		return core.Error(core.EINVALID, "usage: dot <file>")
	}
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %q", filename)
	}
	defer f.Close()
	if err = framedebug.ToGraphViz(intp.root, f, tracer()); err != nil {
		return err
	}
	pterm.Printfln("box tree written to %s", filename)
	return nil
}

func stateString(state style.PseudoState) string {
	switch state {
	case style.Hover:
		return "hover"
	case style.Active:
		return "active"
	case style.Hover | style.Active:
		return "hover+active"
	}
	return "normal"
}

func reportError(err error) {
	var buf bytes.Buffer
	core.UserError(&buf, err)
	pterm.Error.Print(buf.String())
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	node <id> [<parent-id>]      create a node; the first node is the root
	style <id> <declarations>    set properties, e.g. "width: 50%; flow: row wrap"
	sheet <file>                 load a style sheet with rules for #id, #id:hover, #id:active
	state <id> <state>           set pseudo-state: normal, hover, active, hover+active
	viewport <W>x<H>             set the viewport size
	scale <factor>               set the device pixel ratio
	layout                       lay out the tree and show the results
	show                         show the tree
	hit <x> <y>                  find the node at a point
	info <id>                    show the layout request of a node
	dot <file>                   write the tree in Graphviz DOT format
	quit                         leave (or <ctrl>D)
	`)
}
