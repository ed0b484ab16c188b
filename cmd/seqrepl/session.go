package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"lazyseq/pipeline"
	"lazyseq/seqs"
)

type session struct {
	cfg  *pipeline.Config
	opts pipeline.Options
}

func newSession(cfg *pipeline.Config) *session {
	return &session{cfg: cfg, opts: cfg.Options()}
}

func (s *session) infof(format string, args ...any) {
	if s.cfg.Trace != pipeline.TraceError {
		pterm.Info.Printfln(format, args...)
	}
}

func (s *session) debugf(format string, args ...any) {
	if s.cfg.Trace == pipeline.TraceDebug {
		pterm.Debug.Printfln(format, args...)
	}
}

// handle processes one line of interactive input and reports whether to quit.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, ":"):
		return s.command(line)
	}
	s.eval("", line)
	return false
}

// command runs a colon command and reports whether to quit.
func (s *session) command(line string) bool {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		pterm.Error.Println("empty command, try :help")
		return false
	}
	switch fields[0] {
	case "q", "quit", "exit":
		return true
	case "help":
		src, stages, sinks := pipeline.Words()
		pterm.Println("sources:", strings.Join(src, " "))
		pterm.Println("stages: ", strings.Join(stages, " "))
		pterm.Println("sinks:  ", strings.Join(sinks, " "))
	case "list":
		if len(s.cfg.Pipelines) == 0 {
			s.infof("no named pipelines")
		}
		for _, p := range s.cfg.Pipelines {
			pterm.Printfln("%-16s %s", p.Name, p.Expr)
		}
	case "run":
		if len(fields) < 2 {
			pterm.Error.Println(":run needs a pipeline name")
			return false
		}
		name := strings.Join(fields[1:], " ")
		named, ok := s.cfg.Lookup(name)
		if !ok {
			pterm.Error.Printfln("no pipeline named %q", name)
			return false
		}
		pterm.DefaultSection.Println(named.Name)
		s.eval(named.Name, named.Expr)
	case "max":
		n, err := strconv.Atoi(strings.Join(fields[1:], ""))
		if err != nil || n <= 0 {
			pterm.Error.Println(":max needs a positive number")
			return false
		}
		s.opts.MaxItems = n
		s.infof("printing up to %d elements", n)
	default:
		pterm.Error.Printfln("unknown command :%s, try :help", fields[0])
	}
	return false
}

// eval parses, evaluates and prints one pipeline. It reports success. label
// prefixes error messages.
func (s *session) eval(label, expr string) bool {
	p, err := pipeline.Parse(expr)
	if err != nil {
		s.fail(label, err)
		return false
	}
	s.debugf("%s", p)
	res, err := p.Eval(s.opts)
	if err != nil {
		s.fail(label, err)
		return false
	}
	s.debugf("%d source elements pulled", res.Pulls)

	if h, ok := res.Histogram(); ok {
		if err := pterm.DefaultTable.WithHasHeader().WithData(histogramTable(h)).Render(); err != nil {
			s.fail(label, err)
			return false
		}
		return true
	}
	pterm.Info.Println(formatResult(res))
	if res.Truncated {
		pterm.Warning.Printfln("output truncated after %d elements, see -max", s.opts.MaxItems)
	}
	return true
}

func (s *session) fail(label string, err error) {
	if label != "" {
		pterm.Error.Printfln("%s: %v", label, err)
		return
	}
	pterm.Error.Println(err)
}

func formatResult(res pipeline.Result) string {
	if res.HasValue {
		return pipeline.Format(res.Value)
	}
	out := pipeline.Format(res.Items)
	if res.Truncated {
		out = strings.TrimSuffix(out, "]") + " ...]"
	}
	return out
}

// histogramTable lists the most frequent values first; ties keep first-seen order.
func histogramTable(h *seqs.Histogram[any]) pterm.TableData {
	type row struct {
		value any
		count int
	}
	var rows []row
	for v, n := range h.All() {
		rows = append(rows, row{v, n})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].count > rows[j].count })

	data := pterm.TableData{{"value", "count"}}
	for _, r := range rows {
		data = append(data, []string{pipeline.Format(r.value), strconv.Itoa(r.count)})
	}
	return data
}
