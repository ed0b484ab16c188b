package pipeline

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type TokenKind int

const (
	TokNum TokenKind = iota + 1
	TokString
	TokIdent
	TokOp
	TokPipe
)

func (k TokenKind) String() string {
	switch k {
	case TokNum:
		return "NUM"
	case TokString:
		return "STRING"
	case TokIdent:
		return "IDENT"
	case TokOp:
		return "OP"
	case TokPipe:
		return "PIPE"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one lexeme of a pipeline expression. Column is 1-based.
type Token struct {
	Kind   TokenKind
	Text   string
	Column int
}

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

// sharedLexer compiles the DFA on first use.
func sharedLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		lx.Add([]byte(`\|`), makeToken(TokPipe))
		lx.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+)?`), makeToken(TokNum))
		lx.Add([]byte(`\"[^"]*\"`), makeToken(TokString))
		lx.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(TokIdent))
		lx.Add([]byte(`\<\=|\>\=|\=\=|\!\=|\<|\>|\+|\-|\*|\/|\%`), makeToken(TokOp))
		if err := lx.Compile(); err != nil {
			lexerErr = fmt.Errorf("pipeline: compiling lexer: %w", err)
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind TokenKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// Tokenize splits input into tokens. Characters that start no token are
// reported as an ErrSyntax error.
func Tokenize(input string) ([]Token, error) {
	lx, err := sharedLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}

	var out []Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			end := min(ui.FailTC+1, len(input))
			return nil, fmt.Errorf("pipeline: %w: unexpected %q at column %d",
				ErrSyntax, input[ui.StartTC:end], ui.StartTC+1)
		}
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w: %v", ErrSyntax, err)
		}
		t := tok.(*lexmachine.Token)
		out = append(out, Token{
			Kind:   TokenKind(t.Type),
			Text:   string(t.Lexeme),
			Column: t.StartColumn,
		})
	}
	return out, nil
}
