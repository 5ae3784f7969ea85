package natural

// Tokenize splits input on ASCII whitespace and classifies every word as a
// size, a number, or a mix of numeric and textual runs. It never fails: input
// that matches no other rule becomes Text.
func Tokenize(input string) TokenizedString {
	tokens := make([]Token, 0, estimateTokens(input))

	for pos := 0; ; {
		start, end, ok := nextWord(input, pos)
		if !ok {
			break
		}

		tokens = appendWord(tokens, input, start, end)
		pos = end
	}

	return TokenizedString{input: input, tokens: tokens}
}

func appendWord(tokens []Token, input string, start, end int) []Token {
	word := input[start:end]

	if n := len(tokens); n > 0 && tokens[n-1].kind == KindText {
		prev := tokens[n-1]

		if rank, err := classifySizePair(prev.raw, word); err == nil {
			raw := input[prev.start:end]
			if prev.end+1 != start || input[prev.end] != ' ' {
				raw = prev.raw + " " + word
			}

			tokens[n-1] = sizeToken(raw, rank, prev.start, end)

			return tokens
		}
	}

	if rank, err := classifySize(word); err == nil {
		return append(tokens, sizeToken(word, rank, start, end))
	}

	if value, err := parseNumber(word); err == nil {
		return append(tokens, numberToken(word, value, start))
	}

	return appendRuns(tokens, word, start)
}

// appendRuns emits one token per maximal numeric or non-numeric run of word.
// A word without any transition comes out as a single Text token.
func appendRuns(tokens []Token, word string, offset int) []Token {
	for i := 0; i < len(word); {
		j := runEnd(word, i)
		run := word[i:j]

		if value, err := parseNumber(run); err == nil {
			tokens = append(tokens, numberToken(run, value, offset+i))
		} else {
			tokens = append(tokens, textToken(run, offset+i))
		}

		i = j
	}

	return tokens
}

func runEnd(word string, i int) int {
	if isDigit(word[i]) {
		return numericRunEnd(word, i)
	}

	j := i + 1
	for j < len(word) && !isDigit(word[j]) {
		j++
	}

	return j
}

// nextWord finds the next run of non-whitespace bytes at or after pos.
func nextWord(input string, pos int) (start, end int, ok bool) {
	for pos < len(input) && isSpace(input[pos]) {
		pos++
	}

	if pos == len(input) {
		return 0, 0, false
	}

	end = pos
	for end < len(input) && !isSpace(input[end]) {
		end++
	}

	return pos, end, true
}

// isSpace matches ASCII whitespace: space, tab, line feed, form feed and
// carriage return. Vertical tab is not whitespace here.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

func estimateTokens(input string) int {
	const bytesPerToken = 4

	return len(input)/bytesPerToken + 1
}
