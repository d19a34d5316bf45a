/*
File    : cmd/ecmalex/main.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex

Command ecmalex is the entry point for the ecmalex scanner.
It provides two modes of operation:
 1. REPL mode (default): interactively lex lines of ECMAScript source
 2. File mode: lex a source file given on the command line
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akashmaji946/ecmalex/internal/lexer"
	"github.com/akashmaji946/ecmalex/internal/token"
	"github.com/akashmaji946/ecmalex/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the scanner.
var VERSION = "v1.0.0"

// AUTHOR is the contact information of the scanner's author.
var AUTHOR = "ecmalex maintainers"

// LICENSE is the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "ecmalex >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ___ ___ __  __    _     _
 | __/ __|  \/  |  / \   | |    ___ __  __
 | _| (__| |\/| | / _ \  | |__ / -_)\ \/ /
 |___\___|_|  |_|/_/ \_\ |____|\___| \_/
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	strict := flag.Bool("strict", false, "treat legacy octal literals and escapes as errors")
	noTrivia := flag.Bool("notrivia", false, "omit whitespace and comment tokens from output")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	opts := lexer.Options{StrictMode: *strict, PreserveTrivia: !*noTrivia}

	if flag.NArg() > 0 {
		runFile(flag.Arg(0), opts)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, opts)
	repler.Start(os.Stdin, os.Stdout)
}

func printVersion() {
	cyanColor.Println("ecmalex - an ECMAScript lexical scanner")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile lexes the file at path and prints every token, one per line. On a
// lex error, partial output printed so far is kept and the process exits
// with status 1.
func runFile(path string, opts lexer.Options) {
	l, err := lexer.NewFromFile(path, opts)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	toks, lexErr := l.ScanAll()
	for _, tok := range toks {
		if tok.Kind == token.Eof {
			continue
		}
		fmt.Printf("%d:%d: %s\n", tok.Line, tok.Column, tok.String())
	}

	if lexErr != nil {
		redColor.Fprintf(os.Stderr, "[LEX ERROR] %s\n", lexErr)
		os.Exit(1)
	}
}
