package main

import (
	"io"
	"os"
	"strconv"

	"github.com/amp-labs/propersort/natural"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// renderTokens prints one row per token, grouped by input line.
func renderTokens(lines []string, colorize bool) string {
	tw := table.NewWriter()
	if colorize {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"Line", "Kind", "Raw", "Key", "Offset"})

	for i, line := range lines {
		ts := natural.Tokenize(line)
		if ts.Len() == 0 {
			tw.AppendRow(table.Row{i + 1, "", "", "", ""})

			continue
		}

		for _, tok := range ts.Tokens() {
			start, _ := tok.Span()
			tw.AppendRow(table.Row{i + 1, tok.Kind().String(), tok.Raw(), tokenKey(tok), strconv.Itoa(start)})
		}

		tw.AppendSeparator()
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AutoMerge: true},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	return tw.Render() + "\n"
}

// tokenKey is the value a token is compared by.
func tokenKey(tok natural.Token) string {
	if n, ok := tok.Number(); ok {
		return n.String()
	}

	if r, ok := tok.Size(); ok {
		return r.String()
	}

	return ""
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
