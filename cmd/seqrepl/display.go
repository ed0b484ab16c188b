package main

import (
	"github.com/pterm/pterm"

	"lazyseq/pipeline"
)

// We use pterm for moderately fancy output.
func initDisplay(level string, color bool) {
	if !color {
		pterm.DisableColor()
	}
	if level == pipeline.TraceDebug {
		pterm.EnableDebugMessages()
	}
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warn",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}
