package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"lazyseq/pipeline"
)

func main() {
	configFile := flag.String("f", "", "YAML file with limits and named pipelines")
	maxItems := flag.Int("max", 0, "number of elements printed for pipelines without a sink")
	tlevel := flag.String("trace", "", "Trace level [debug|info|error]")
	flag.Parse()

	cfg := pipeline.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(*configFile); err != nil {
			pterm.Error.Println(err)
			os.Exit(2)
		}
	}
	if *maxItems > 0 {
		cfg.MaxItems = *maxItems
	}
	if *tlevel != "" {
		cfg.Trace = strings.ToLower(*tlevel)
	}
	if err := checkTraceLevel(cfg.Trace); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	initDisplay(cfg.Trace, term.IsTerminal(int(os.Stdout.Fd())))
	sess := newSession(cfg)
	sess.debugf("Trace level is %s, printing up to %d elements", cfg.Trace, cfg.MaxItems)

	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		if !sess.eval("", input) {
			os.Exit(1)
		}
		return
	}
	if len(cfg.Pipelines) > 0 {
		ok := true
		for _, named := range cfg.Pipelines {
			pterm.DefaultSection.Println(named.Name)
			ok = sess.eval(named.Name, named.Expr) && ok
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		sess.interactive()
		return
	}
	if !sess.batch(bufio.NewScanner(os.Stdin)) {
		os.Exit(1)
	}
}

func checkTraceLevel(level string) error {
	switch level {
	case pipeline.TraceError, pipeline.TraceInfo, pipeline.TraceDebug:
		return nil
	}
	return fmt.Errorf("unknown trace level %q, want debug, info or error", level)
}

// interactive runs the prompt until EOF or :quit.
func (s *session) interactive() {
	repl, err := readline.New("seq> ")
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	defer repl.Close()

	s.infof("Welcome to seqrepl, quit with <ctrl>D or :quit")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if quit := s.handle(line); quit {
			break
		}
	}
	s.infof("Good bye!")
}

// batch evaluates one line after the other and reports whether all succeeded.
func (s *session) batch(scanner *bufio.Scanner) bool {
	ok := true
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if s.command(line) {
				break
			}
			continue
		}
		if !s.eval(fmt.Sprintf("line %d", lineno), line) {
			ok = false
		}
	}
	if err := scanner.Err(); err != nil {
		pterm.Error.Println("reading input:", err)
		return false
	}
	return ok
}
