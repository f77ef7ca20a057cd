// Plaid CLI - tokenizes Plaid source files and reports lexical errors
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/projectplaid/compiler/compiler"
	"github.com/projectplaid/compiler/manifest"
	"github.com/projectplaid/compiler/server"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	dump := flag.Bool("dump", false, "Print the token stream for each file")
	format := flag.String("format", "text", "Dump format: text, json, or cbor")
	comments := flag.Bool("comments", false, "Surface comment tokens in dumps")
	serveMode := flag.Bool("serve", false, "Start the language server on stdio")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: plaidc [options] [paths...]\n\n")
		fmt.Fprintf(os.Stderr, "Scans .st files from the given paths and reports lexical errors.\n")
		fmt.Fprintf(os.Stderr, "With no paths, source directories come from plaid.toml.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  plaidc ./src               # Scan src/, report errors\n")
		fmt.Fprintf(os.Stderr, "  plaidc ./src/...           # Scan recursively\n")
		fmt.Fprintf(os.Stderr, "  plaidc -dump main.st       # Print the token stream\n")
		fmt.Fprintf(os.Stderr, "  plaidc -dump -format json main.st\n")
		fmt.Fprintf(os.Stderr, "  plaidc -serve              # Start the LSP server on stdio\n")
	}
	flag.Parse()

	if *serveMode {
		if err := server.NewLSP().Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ext := ".st"
	keepComments := *comments
	paths := flag.Args()

	// plaid.toml supplies source dirs and lexer defaults; flags and
	// explicit paths take precedence.
	m, err := manifest.FindAndLoad(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading plaid.toml: %v\n", err)
	}
	if m != nil {
		ext = m.Source.Extension
		if m.Lexer.KeepComments {
			keepComments = true
		}
		if len(paths) == 0 {
			paths = m.SourceDirPaths()
		}
		if *verbose {
			fmt.Printf("Using manifest in %s\n", m.Dir)
		}
	}

	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	totalFiles := 0
	totalTokens := 0
	for _, path := range paths {
		files, err := collectFiles(path, ext)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, file := range files {
			tokens, err := scanFile(file, keepComments)
			if err != nil {
				// Lexical errors already carry line:col
				fmt.Fprintf(os.Stderr, "%s:%v\n", file, err)
				os.Exit(1)
			}
			if *dump {
				if err := dumpTokens(os.Stdout, tokens, *format); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
			}
			totalFiles++
			totalTokens += len(tokens)
		}
	}

	if *verbose {
		fmt.Printf("Scanned %d files, %d tokens\n", totalFiles, totalTokens)
	}
}

// collectFiles resolves a CLI path argument to a list of source files.
// A trailing /... scans directories recursively.
func collectFiles(path, ext string) ([]string, error) {
	recursive := false
	if strings.HasSuffix(path, "/...") {
		recursive = true
		path = strings.TrimSuffix(path, "/...")
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	if recursive {
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(p, ext) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", path, err)
		}
	} else {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
	}
	return files, nil
}

// scanFile tokenizes one source file.
func scanFile(path string, keepComments bool) ([]compiler.Token, error) {
	l, err := compiler.NewLexerFromFile(path)
	if err != nil {
		return nil, err
	}
	l.KeepComments = keepComments

	var tokens []compiler.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Symbol == compiler.SymbolEndOfFile {
			return tokens, nil
		}
	}
}
