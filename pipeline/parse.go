package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"lazyseq/seqs"
)

// Step is one |-separated segment of a pipeline: a word and its literal arguments.
type Step struct {
	Name string
	Args []any
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	for _, a := range s.Args {
		b.WriteByte(' ')
		b.WriteString(Format(a))
	}
	return b.String()
}

// Pipeline is a parsed expression. It holds no traversal state and may be
// evaluated any number of times.
type Pipeline struct {
	Steps []Step

	source seqs.Seq[any]
	stages []func(seqs.Seq[any]) seqs.Seq[any]
	sink   func(seqs.Seq[any]) any
}

// String returns the expression in normalized form.
func (p *Pipeline) String() string {
	parts := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " | ")
}

// HasSink reports whether the last step reduces the sequence to a single value.
func (p *Pipeline) HasSink() bool {
	return p.sink != nil
}

// Parse tokenizes and checks text. Unknown words are reported with ErrUnknownStage,
// every other malformed input with ErrSyntax.
func Parse(text string) (*Pipeline, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	segments, err := splitSegments(toks)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{}
	for i, seg := range segments {
		step, err := parseStep(seg)
		if err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, step)

		last := i == len(segments)-1
		if err := p.bind(step, i == 0, last); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Pipeline {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pipeline) bind(step Step, first, last bool) error {
	if first {
		build, ok := sources[step.Name]
		if !ok {
			return unknown(step.Name, "source")
		}
		src, err := build(step.Args)
		if err != nil {
			return err
		}
		p.source = src
		return nil
	}
	if build, ok := stages[step.Name]; ok {
		stage, err := build(step.Args)
		if err != nil {
			return err
		}
		p.stages = append(p.stages, stage)
		return nil
	}
	if build, ok := sinks[step.Name]; ok {
		if !last {
			return syntaxErrorf("%s reduces the sequence and must be the last step", step.Name)
		}
		sink, err := build(step.Args)
		if err != nil {
			return err
		}
		p.sink = sink
		return nil
	}
	if _, ok := sources[step.Name]; ok {
		return syntaxErrorf("%s is a source and must be the first step", step.Name)
	}
	return unknown(step.Name, "stage or sink")
}

func unknown(name, want string) error {
	return fmt.Errorf("pipeline: %w: %q is not a known %s", ErrUnknownStage, name, want)
}

func splitSegments(toks []Token) ([][]Token, error) {
	if len(toks) == 0 {
		return nil, syntaxErrorf("empty pipeline")
	}
	var (
		segments [][]Token
		cur      []Token
	)
	for _, t := range toks {
		if t.Kind != TokPipe {
			cur = append(cur, t)
			continue
		}
		if len(cur) == 0 {
			return nil, syntaxErrorf("empty step before | at column %d", t.Column)
		}
		segments = append(segments, cur)
		cur = nil
	}
	if len(cur) == 0 {
		return nil, syntaxErrorf("pipeline ends with |")
	}
	return append(segments, cur), nil
}

func parseStep(seg []Token) (Step, error) {
	head := seg[0]
	if head.Kind != TokIdent {
		return Step{}, syntaxErrorf("expected a step name at column %d, got %q", head.Column, head.Text)
	}
	step := Step{Name: strings.ToLower(head.Text)}
	args := seg[1:]
	if step.Name == "map" {
		args = splitSignedOperand(args)
	}
	for _, t := range args {
		v, err := literal(t)
		if err != nil {
			return Step{}, err
		}
		step.Args = append(step.Args, v)
	}
	return step, nil
}

// splitSignedOperand reads "map -1" as "map - 1": the lexer folds a sign into
// the number, but map always starts with an operator.
func splitSignedOperand(args []Token) []Token {
	if len(args) == 0 || args[0].Kind != TokNum || !strings.ContainsAny(args[0].Text[:1], "+-") {
		return args
	}
	num := args[0]
	sign := Token{Kind: TokOp, Text: num.Text[:1], Column: num.Column}
	num.Text = num.Text[1:]
	num.Column++
	return append([]Token{sign, num}, args[1:]...)
}

func literal(t Token) (any, error) {
	switch t.Kind {
	case TokNum:
		if strings.Contains(t.Text, ".") {
			f, err := strconv.ParseFloat(t.Text, 64)
			if err != nil {
				return nil, syntaxErrorf("bad number %q at column %d", t.Text, t.Column)
			}
			return f, nil
		}
		n, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return nil, syntaxErrorf("bad integer %q at column %d", t.Text, t.Column)
		}
		return n, nil
	case TokString:
		return t.Text[1 : len(t.Text)-1], nil
	case TokOp:
		return Op(t.Text), nil
	case TokIdent:
		switch strings.ToLower(t.Text) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "nil":
			return nil, nil
		}
		return Word(strings.ToLower(t.Text)), nil
	}
	return nil, syntaxErrorf("unexpected %s %q at column %d", t.Kind, t.Text, t.Column)
}
