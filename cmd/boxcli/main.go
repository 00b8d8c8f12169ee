/*
Command boxcli is an interactive tool to build layout trees and inspect the
geometry computed by the layout passes.

Containers are created at the cursor and the cursor moves into them; leaves
are appended to the container at the cursor. Attributes are set on the node
last created or selected.

	box > vbox dialog
	box > leaf 120x20 text
	box > hbox buttons
	box > leaf 40x20 ok
	box > fill
	box > set EXPAND HORIZONTAL
	box > layout 300x0
	box > show

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/widgetbox/backend/platform"
	"github.com/pterm/pterm"
)

// tracer traces with key 'widgetbox.cli'
func tracer() tracing.Trace {
	return tracing.Select("widgetbox.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.widgetbox.cli":   "Info",
		"trace.widgetbox.frame": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	charsize := flag.String("charsize", "", "Character cell size WxH in pixels")
	shrink := flag.Bool("shrink", false, "Allow containers to shrink below natural size")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the widgetbox layout CLI")
	//
	mconf := testconfig.Conf{}
	if *charsize != "" {
		w, h, err := parseSize(*charsize)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		mconf[platform.KeyCharWidth] = w
		mconf[platform.KeyCharHeight] = h
	}
	//
	// set up REPL
	repl, err := readline.New("box > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(platform.FromConfig(mconf))
	intp.tree.Shrink = *shrink
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	setTraceLevel(*tlevel)
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL(repl)
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

func setTraceLevel(s string) {
	switch strings.ToLower(s) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
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
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.Execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
