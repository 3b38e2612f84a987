package mask

// ReverseFormat mirrors a pattern for right-to-left entry: the pattern is
// read backwards with brackets swapped and escapes kept attached to the rune
// they escape. The section after the `#` suffix marker is mirrored on its own
// and stays last, so the same elements close the mask.
func ReverseFormat(format string) string {
	runes := []rune(format)
	var (
		head   = make([][]rune, 0, len(runes))
		tail   [][]rune
		suffix bool
		depth  int
	)
	for i := 0; i < len(runes); i++ {
		var tok []rune
		switch r := runes[i]; {
		case r == '\\' && i+1 < len(runes):
			tok = runes[i : i+2]
			i++
		case r == '#' && depth == 0 && !suffix:
			suffix = true
			continue
		default:
			switch r {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
			tok = []rune{mirror(r)}
		}
		if suffix {
			tail = append(tail, tok)
		} else {
			head = append(head, tok)
		}
	}

	out := reverseTokens(make([]rune, 0, len(runes)), head)
	if suffix {
		out = append(out, '#')
		out = reverseTokens(out, tail)
	}
	return string(out)
}

func reverseTokens(out []rune, tokens [][]rune) []rune {
	for i := len(tokens) - 1; i >= 0; i-- {
		out = append(out, tokens[i]...)
	}
	return out
}

// CompileReversed compiles the mirrored form of format. Text applied to the
// result must be reversed before and after Apply.
func CompileReversed(format string, notations ...Notation) (*Mask, error) {
	return Compile(ReverseFormat(format), notations...)
}

// ReverseString reverses s rune by rune.
func ReverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func mirror(r rune) rune {
	switch r {
	case '[':
		return ']'
	case ']':
		return '['
	case '{':
		return '}'
	case '}':
		return '{'
	default:
		return r
	}
}
