// Package colorize provides syntax highlighting of Uxntal listings for terminals.
package colorize

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/term"
)

// StyleName is the name of the registered listing style.
const StyleName = "uxntal-dark"

// Lexer tokenizes the listing format written by the disassembler.
var Lexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "Uxntal",
		Aliases:   []string{"uxntal", "tal"},
		Filenames: []string{"*.tal"},
		EnsureNL:  true,
	},
	uxntalRules,
)

var style = styles.Register(chroma.MustNewStyle(StyleName, chroma.StyleEntries{
	chroma.Text:             "#f8f8f2",
	chroma.Comment:          "#6272a4 italic",
	chroma.NameLabel:        "#44475a",
	chroma.Keyword:          "#ff79c6 bold",
	chroma.KeywordPseudo:    "#bd93f9",
	chroma.LiteralNumberHex: "#50fa7b",
	chroma.LiteralNumber:    "#f1fa8c",
}))

func uxntalRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `\n`, Type: chroma.TextWhitespace},
			{Pattern: `[ \t]+`, Type: chroma.TextWhitespace},
			{Pattern: `\(\s[0-9a-f]{4}\s\)`, Type: chroma.NameLabel},
			{Pattern: `\(\s[^)\n]*\)`, Type: chroma.Comment},
			{Pattern: `\|[0-9a-f]+`, Type: chroma.KeywordPseudo},
			{Pattern: `#[0-9a-f]+`, Type: chroma.LiteralNumberHex},
			{Pattern: `[A-Z]{3}2?k?r?`, Type: chroma.Keyword},
			{Pattern: `[0-9a-f]{2}`, Type: chroma.LiteralNumber},
			{Pattern: `.`, Type: chroma.Text},
		},
	}
}

// Write writes the listing highlighted with 256 color terminal escape codes.
func Write(w io.Writer, listing string) error {
	iterator, err := Lexer.Tokenise(nil, listing)
	if err != nil {
		return fmt.Errorf("tokenizing listing: %w", err)
	}

	formatter := formatters.Get("terminal256")
	if err := formatter.Format(w, style, iterator); err != nil {
		return fmt.Errorf("formatting listing: %w", err)
	}
	return nil
}

// IsTerminal returns whether the writer is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
