// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package easyargs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Synopsis placeholders used when the argument or option list is too long to
// spell out inline.
const (
	argsPlaceholder    = "<ARGUMENTS>"
	optionsPlaceholder = "[OPTIONS]"
	inlineLimit        = 3
)

// Help renders the usage synopsis and the aligned argument/option tables for
// the schema. execName is the name the program was invoked as, typically
// os.Args[0]. Pure formatting; never fails.
func (s *Schema) Help(execName string) string {
	return s.renderHelp(execName, 0)
}

// FprintHelp writes Help to w. When w is a terminal, long description lines
// are wrapped to the terminal width.
func (s *Schema) FprintHelp(w io.Writer, execName string) {
	width := 0
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil {
				width = cols
			}
		}
	}
	io.WriteString(w, s.renderHelp(execName, width))
}

func (s *Schema) renderHelp(execName string, width int) string {
	var b strings.Builder

	b.WriteString("USAGE:\n")
	b.WriteString("    " + execName + " ")
	if n := len(s.required); n > 0 {
		if n <= inlineLimit {
			for _, d := range s.required {
				b.WriteString("<" + d.label() + "> ")
			}
		} else {
			b.WriteString(argsPlaceholder + " ")
		}
	}
	if n := len(s.optional) + len(s.boolean); n > 0 {
		if n <= inlineLimit {
			for _, d := range s.optional {
				b.WriteString("[" + d.Flag + " <" + d.label() + ">] ")
			}
			for _, d := range s.boolean {
				b.WriteString("[" + d.Flag + "] ")
			}
		} else {
			b.WriteString(optionsPlaceholder)
		}
	}
	b.WriteString("\n\n")

	// Column width: widest of "<label>", "flag <label>", and "flag".
	maxWidth := 0
	for _, d := range s.required {
		maxWidth = max(maxWidth, len(d.label())+2)
	}
	for _, d := range s.optional {
		maxWidth = max(maxWidth, len(d.Flag)+1+len(d.label())+2)
	}
	for _, d := range s.boolean {
		maxWidth = max(maxWidth, len(d.Flag))
	}

	if len(s.required) > 0 {
		b.WriteString("ARGUMENTS:\n")
		for _, d := range s.required {
			writeRow(&b, "<"+d.label()+">", d.Help, maxWidth, width)
		}
		b.WriteString("\n")
	}

	if len(s.optional)+len(s.boolean) > 0 {
		b.WriteString("OPTIONS:\n")
		for _, d := range s.optional {
			desc := fmt.Sprintf("%s (default: %s)", d.Help, formatDefault(d))
			writeRow(&b, d.Flag+" <"+d.label()+">", desc, maxWidth, width)
		}
		for _, d := range s.boolean {
			writeRow(&b, d.Flag, d.Help, maxWidth, width)
		}
	}

	return b.String()
}

func writeRow(b *strings.Builder, item, desc string, maxWidth, wrapWidth int) {
	indent := 4 + maxWidth + 4
	b.WriteString("    ")
	b.WriteString(item)
	b.WriteString(strings.Repeat(" ", maxWidth-len(item)+4))
	if wrapWidth <= indent {
		b.WriteString(desc)
		b.WriteString("\n")
		return
	}
	for i, line := range wrapText(desc, wrapWidth-indent) {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", indent))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// wrapText greedily breaks text into lines of at most width characters,
// never splitting a word.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func formatDefault(d Descriptor) string {
	verb := d.Format
	if verb == "" {
		switch d.Type {
		case String:
			verb = "%s"
		case Char:
			verb = "%c"
		case Float, Double:
			verb = "%g"
		default:
			verb = "%d"
		}
	}
	return fmt.Sprintf(verb, d.Default)
}
