package translator

import "strings"

// splitTopLevelWords splits a schema Value string like
// "private static Map<String, Int> m" on spaces, but only at bracket
// depth zero — so the ", " inside a normalized generic argument list
// never produces a spurious extra word.
func splitTopLevelWords(s string) []string {
	var words []string

	depth := 0
	start := 0

	for i, c := range s {
		switch c {
		case '<', '[':
			depth++
		case '>', ']':
			depth--
		case ' ':
			if depth == 0 {
				if i > start {
					words = append(words, s[start:i])
				}

				start = i + 1
			}
		}
	}

	if start < len(s) {
		words = append(words, s[start:])
	}

	return words
}

// splitParamValue parses a Param's "<type> <name>" Value.
func splitParamValue(value string) (typ, name string) {
	words := splitTopLevelWords(value)
	if len(words) < 2 {
		return "", value
	}

	name = words[len(words)-1]
	typ = strings.Join(words[:len(words)-1], " ")

	return typ, name
}

// splitFieldValue parses a FieldDecl's "<modifiers> <type> <name>" Value.
func splitFieldValue(value string) (mods []string, typ, name string) {
	words := splitTopLevelWords(value)
	if len(words) < 2 {
		return nil, "", value
	}

	name = words[len(words)-1]
	typ = words[len(words)-2]
	mods = words[:len(words)-2]

	return mods, typ, name
}

// splitMethodValue parses a MethodDecl's "<modifiers> <returnType> <name>" Value.
func splitMethodValue(value string) (mods []string, returnType, name string) {
	return splitFieldValue(value)
}

func hasModifier(mods []string, want string) bool {
	for _, m := range mods {
		if m == want {
			return true
		}
	}

	return false
}
