package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/seqs"
	"github.com/npillmayer/seqs/dlist"
	"github.com/npillmayer/seqs/vector"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// container is the operation surface common to both sequence kinds,
// over interface{} elements. SubList is excluded: its return type differs
// per kind and is handled by a type switch in execute().
type container interface {
	seqs.Sequence[interface{}]
	Get(int) interface{}
	Set(int, interface{}) interface{}
	Add(interface{}) bool
	AddAll(seqs.Sequence[interface{}]) bool
	Remove(int) interface{}
	Insert(int, interface{})
	Hash() uint32
	String() string
}

// session is the state of one interactive run: the two containers under
// experimentation and which of them commands currently address.
type session struct {
	repl    *readline.Instance
	lexer   *lexmachine.Lexer
	vec     *vector.Seq[interface{}]
	lst     *dlist.Seq[interface{}]
	useList bool
}

// main() starts an interactive CLI where users manipulate one vector and
// one dlist sequence with short commands ("add 5", "sub 0 2", …).
// Conditions raised by the containers (index violations etc.) are caught
// and printed, so a slip of the finger does not end the session.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to seqsh, a sandbox for seqs containers")
	//
	lexer, err := buildLexer()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	repl, err := readline.New("seqsh> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	s := &session{
		repl:  repl,
		lexer: lexer,
		vec:   vector.New[interface{}](),
		lst:   dlist.New[interface{}](),
	}
	tracer().Infof("Quit with <ctrl>D")
	s.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// Command lines are tokenized with a lexmachine DFA: command words and
// signed integers, whitespace skipped.
const (
	tokIdent int = iota + 1
	tokNumber
)

func buildLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[a-zA-Z][a-zA-Z0-9]*`), makeToken(tokIdent))
	lexer.Add([]byte(`-?[0-9]+`), makeToken(tokNumber))
	lexer.Add([]byte(`( |\t)+`), skipToken)
	if err := lexer.Compile(); err != nil {
		return nil, err
	}
	return lexer, nil
}

func makeToken(id int) lexmachine.Action {
	return func(sc *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return sc.Token(id, string(m.Bytes), m), nil
	}
}

func skipToken(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func (s *session) tokenize(line string) ([]string, error) {
	sc, err := s.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var words []string
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			return nil, err
		}
		words = append(words, string(tok.(*lexmachine.Token).Lexeme))
	}
	return words, nil
}

// REPL starts interactive mode.
func (s *session) REPL() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		words, err := s.tokenize(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if len(words) == 0 {
			continue
		}
		if quit := s.execute(words); quit {
			break
		}
	}
	println("Good bye!")
}

// current returns the container that commands address.
func (s *session) current() container {
	if s.useList {
		return s.lst
	}
	return s.vec
}

// execute runs a single command. Conditions raised by the containers are
// recovered and printed instead of ending the session.
func (s *session) execute(words []string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Println(r)
		}
	}()
	cmd := strings.ToLower(words[0])
	switch cmd {
	case "quit", "bye":
		return true
	case "help":
		printHelp()
	case "vec":
		s.useList = false
		pterm.Info.Println("commands now address the vector sequence")
	case "list":
		s.useList = true
		pterm.Info.Println("commands now address the linked sequence")
	case "print":
		pterm.Info.Println(s.current().String())
	case "size":
		pterm.Info.Println(s.current().Size())
	case "hash":
		pterm.Info.Println(fmt.Sprintf("%#08x", s.current().Hash()))
	case "add":
		n := s.number(words, 1)
		s.current().Add(n)
		pterm.Info.Println(s.current().String())
	case "first":
		if !s.useList {
			pterm.Error.Println("first operates on the linked sequence; switch with 'list'")
			return
		}
		s.lst.AddFirst(s.number(words, 1))
		pterm.Info.Println(s.lst.String())
	case "ins":
		s.current().Insert(s.index(words, 1), s.number(words, 2))
		pterm.Info.Println(s.current().String())
	case "get":
		pterm.Info.Println(s.current().Get(s.index(words, 1)))
	case "set":
		old := s.current().Set(s.index(words, 1), s.number(words, 2))
		pterm.Info.Println(fmt.Sprintf("replaced %v", old))
	case "rm":
		old := s.current().Remove(s.index(words, 1))
		pterm.Info.Println(fmt.Sprintf("removed %v", old))
	case "sub":
		from, to := s.index(words, 1), s.index(words, 2)
		if s.useList {
			pterm.Info.Println(s.lst.SubList(from, to).String())
		} else {
			pterm.Info.Println(s.vec.SubList(from, to).String())
		}
	case "all":
		// append every element of the other container kind
		if s.useList {
			s.lst.AddAll(s.vec)
		} else {
			s.vec.AddAll(s.lst)
		}
		pterm.Info.Println(s.current().String())
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command '%s'; try 'help'", cmd))
	}
	return false
}

// number parses the i-th word as an integer element value; a missing or
// malformed argument is raised and recovered in execute().
func (s *session) number(words []string, i int) interface{} {
	if i >= len(words) {
		panic(fmt.Errorf("command '%s' needs %d argument(s)", words[0], i))
	}
	n, err := strconv.Atoi(words[i])
	if err != nil {
		panic(fmt.Errorf("argument '%s' is not a number", words[i]))
	}
	return n
}

func (s *session) index(words []string, i int) int {
	n, _ := s.number(words, i).(int)
	return n
}

func printHelp() {
	pterm.Info.Println(strings.TrimSpace(`
vec | list      address the vector / the linked sequence
add N           append N
first N         prepend N (linked sequence only)
ins I N         insert N before position I
get I           element at position I
set I N         replace element at position I with N
rm I            remove element at position I
sub A B         extract positions [A, B) as a new sequence
all             append every element of the other container kind
print size hash inspect the addressed sequence
quit | bye      leave`))
}
