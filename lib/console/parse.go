package console

import "strings"

// Parse splits text into commands, each an argv slice.
func Parse(text string) [][]string {
	var (
		cmds    [][]string
		argv    []string
		tok     strings.Builder
		inTok   bool
		inQuote bool
	)
	flushTok := func() {
		if inTok {
			argv = append(argv, tok.String())
			tok.Reset()
			inTok = false
		}
	}
	flushCmd := func() {
		flushTok()
		if len(argv) > 0 {
			cmds = append(cmds, argv)
		}
		argv = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inQuote {
			switch {
			case ch == '\\' && i+1 < len(text) && (text[i+1] == '"' || text[i+1] == '\\'):
				i++
				tok.WriteByte(text[i])
			case ch == '"':
				inQuote = false
			case ch == '\n':
				// unterminated quote ends with the line
				inQuote = false
				flushCmd()
			default:
				tok.WriteByte(ch)
			}
			continue
		}

		switch {
		case ch == '"':
			inQuote = true
			inTok = true
		case ch == '/' && i+1 < len(text) && text[i+1] == '/':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			flushCmd()
		case ch == ';' || ch == '\n':
			flushCmd()
		case ch == ' ' || ch == '\t' || ch == '\r':
			flushTok()
		default:
			tok.WriteByte(ch)
			inTok = true
		}
	}
	flushCmd()
	return cmds
}

// QuoteString wraps s in double quotes, escaping quotes and backslashes, so
// that Parse reads it back as a single argument.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
