package translator

import "strings"

// pyType maps a normalized Java type spelling (as produced by the
// parser's type parser — no whitespace around `<>[]`) to its Python
// annotation, per §4.2.2. Mapping is applied recursively inside generic
// arguments and array element types.
func pyType(javaType string) string {
	javaType = strings.TrimSpace(javaType)

	if strings.HasSuffix(javaType, "[]") {
		elem := pyType(strings.TrimSuffix(javaType, "[]"))

		return "list[" + elem + "]"
	}

	name, args := splitGeneric(javaType)

	switch name {
	case "int", "long", "short", "byte", "Integer", "Long", "Short", "Byte":
		return "int"
	case "float", "double", "Float", "Double":
		return "float"
	case "boolean", "Boolean":
		return "bool"
	case "char", "Character", "String":
		return "str"
	case "void", "Void":
		return "None"
	case "List", "ArrayList":
		return "list[" + genericArgOrAny(args, 0) + "]"
	case "Map", "HashMap":
		return "dict[" + genericArgOrAny(args, 0) + ", " + genericArgOrAny(args, 1) + "]"
	case "Set", "HashSet":
		return "set[" + genericArgOrAny(args, 0) + "]"
	case "Optional":
		return genericArgOrAny(args, 0) + " | None"
	default:
		return "Any"
	}
}

// pyDefault returns the default value expression for a Java type's
// zero-value, per §4.2.2's Default value column.
func pyDefault(javaType string) string {
	javaType = strings.TrimSpace(javaType)

	if strings.HasSuffix(javaType, "[]") {
		return "[]"
	}

	name, _ := splitGeneric(javaType)

	switch name {
	case "int", "long", "short", "byte", "Integer", "Long", "Short", "Byte":
		return "0"
	case "float", "double", "Float", "Double":
		return "0.0"
	case "boolean", "Boolean":
		return "False"
	case "char", "Character", "String":
		return `""`
	case "List", "ArrayList":
		return "[]"
	case "Map", "HashMap":
		return "{}"
	case "Set", "HashSet":
		return "set()"
	case "Optional":
		return "None"
	default:
		return "None"
	}
}

// splitGeneric splits a normalized type spelling like "Map<String, Int>"
// into its head name and raw (not yet individually re-split) argument
// list. A bare generic name with no "<" returns a nil args slice.
func splitGeneric(javaType string) (name string, args []string) {
	open := strings.IndexByte(javaType, '<')
	if open < 0 {
		return javaType, nil
	}

	name = javaType[:open]

	inner := javaType[open+1 : len(javaType)-1] // drop the trailing '>'

	return name, splitTopLevelArgs(inner)
}

// splitTopLevelArgs splits a generic argument list on top-level commas,
// respecting nested `<>` so `Map<String, List<Int>>` splits into exactly
// two arguments.
func splitTopLevelArgs(inner string) []string {
	var args []string

	depth := 0
	start := 0

	for i, c := range inner {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}

	args = append(args, strings.TrimSpace(inner[start:]))

	return args
}

func genericArgOrAny(args []string, i int) string {
	if i >= len(args) {
		return "Any"
	}

	return pyType(args[i])
}
