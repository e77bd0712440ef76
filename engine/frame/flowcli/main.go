/*
Command flowcli is an interactive shell for building box trees, styling them
and inspecting their layout.

	flowcli -viewport 800x600 -sheet page.css

Commands are read line by line; type "help" for a list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'flowbox.cli'
func tracer() tracing.Trace {
	return tracing.Select("flowbox.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	sheet := flag.String("sheet", "", "Style sheet to load")
	viewport := flag.String("viewport", "800x600", "Viewport size, e.g. 800x600")
	scale := flag.String("scale", "1", "Scale factor (device pixel ratio)")
	parallel := flag.Int("parallel", 1, "Max. number of concurrent sub-tree layouts")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.flowbox.cli":     *tlevel,
		"trace.flowbox.layout":  *tlevel,
		"trace.flowbox.boxtree": *tlevel,
		"trace.flowbox.style":   *tlevel,
		"trace.flowbox.frame":   *tlevel,
		boxtree.KeyScale:        *scale,
		boxtree.KeyParallel:     *parallel,
		boxtree.KeyViewport:     *viewport,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the flow layout CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp, err := NewIntp(conf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if *sheet != "" {
		if err := intp.loadSheet(*sheet); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(4)
		}
	}
	//
	// set up REPL
	repl, err := readline.New("flow > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL(repl) // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			reportError(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// viewportDefault is used if the configuration does not name a viewport.
var viewportDefault = dimen.R(0, 0, 800, 600)
