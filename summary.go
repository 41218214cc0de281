package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	brand  = color.New(color.FgHiGreen, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
)

// printSummary lists the connections created during the session.
func printSummary(w io.Writer, created []ConnectionCreated) {
	if len(created) == 0 {
		subtle.Fprintln(w, "netcanvas: no connections created")
		return
	}
	noun := "connections"
	if len(created) == 1 {
		noun = "connection"
	}
	brand.Fprintf(w, "netcanvas: %d %s created\n", len(created), noun)
	for _, ev := range created {
		fmt.Fprintf(w, "  %s %s\n", good.Sprint("•"), connectionLine(ev.From, ev.To))
	}
}
