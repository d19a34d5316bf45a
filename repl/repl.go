/*
File    : repl/repl.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex

Package repl implements the Read-Eval-Print Loop for the ecmalex scanner.
The REPL lexes each line the user enters and prints the resulting token
stream with colored output, one token per line.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/ecmalex/internal/lexer"
	"github.com/akashmaji946/ecmalex/internal/token"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor    = color.New(color.FgBlue)
	yellowColor  = color.New(color.FgYellow)
	redColor     = color.New(color.FgRed)
	greenColor   = color.New(color.FgGreen)
	cyanColor    = color.New(color.FgCyan)
	magentaColor = color.New(color.FgMagenta)
)

// Repl is a Read-Eval-Print Loop over the scanner: it reads a line, lexes
// it, and prints every resulting token except Whitespace, Newline and EOF.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Opts    lexer.Options
}

// NewRepl creates a Repl with the given display strings and scan options.
func NewRepl(banner, version, author, line, license, prompt string, opts lexer.Options) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Opts: opts}
}

// PrintBannerInfo writes the startup banner and usage instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to ecmalex!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of ECMAScript source and press enter to see its tokens")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop, writing tokenized output to writer, until
// '.exit' or EOF. Lines are read by readline from the process's terminal
// (standard input); reader is not read from.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.lexWithRecovery(writer, line)
	}
}

// lexWithRecovery scans a single line and prints its token stream, with
// panic recovery so one malformed line never aborts the session.
func (r *Repl) lexWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	l := lexer.NewFromString("<repl>", line, r.Opts)
	toks, err := l.ScanAll()
	for _, tok := range toks {
		printToken(writer, tok)
	}
	if err != nil {
		redColor.Fprintf(writer, "[LEX ERROR] %s\n", err)
	}
}

// printToken writes one token's description, colored by its kind.
func printToken(writer io.Writer, tok token.Token) {
	switch tok.Kind {
	case token.Eof:
		return
	case token.Whitespace, token.Newline:
		return
	case token.KeywordTok:
		magentaColor.Fprintf(writer, "%s\n", tok.String())
	case token.Identifier:
		yellowColor.Fprintf(writer, "%s\n", tok.String())
	case token.OperatorTok:
		cyanColor.Fprintf(writer, "%s\n", tok.String())
	case token.NumericLiteral, token.StringLiteralTok, token.TemplateStart, token.TemplateMiddle, token.TemplateEnd, token.RegexLiteral:
		greenColor.Fprintf(writer, "%s\n", tok.String())
	case token.Error:
		redColor.Fprintf(writer, "%s\n", tok.String())
	default:
		blueColor.Fprintf(writer, "%s\n", tok.String())
	}
}
