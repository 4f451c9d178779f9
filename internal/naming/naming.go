package naming

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// reserved holds TypeScript words that cannot name a type declaration.
var reserved = map[string]bool{
	"any": true, "boolean": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true, "interface": true,
	"never": true, "new": true, "null": true, "number": true, "object": true,
	"return": true, "string": true, "super": true, "switch": true, "symbol": true,
	"this": true, "throw": true, "true": true, "try": true, "type": true,
	"typeof": true, "undefined": true, "unknown": true, "var": true, "void": true,
	"while": true, "with": true,
}

// IsReservedWord reports whether s is a TypeScript keyword or built-in type
// name that cannot be used as a declaration name.
func IsReservedWord(s string) bool {
	return reserved[s]
}

// IsIdentifier reports whether s is a valid ASCII TypeScript identifier.
// Example: "createdAt" -> true, "created-at" -> false, "2fa" -> false
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// ToPascalCase converts a string to PascalCase.
// Every rune that is not a letter or digit separates words; each word gets
// an upper-case first letter and keeps the rest of its casing.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client.v2" -> "ApiClientV2"
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// TypeName returns a declaration name for a schema key. Keys that are
// already valid, non-reserved identifiers are returned unchanged.
// Example: "Note" -> "Note", "note-list" -> "NoteList", "404" -> "_404"
func TypeName(key string) string {
	if IsIdentifier(key) && !IsReservedWord(key) {
		return key
	}
	name := ToPascalCase(key)
	if name == "" {
		return "Schema"
	}
	if r := name[0]; r >= '0' && r <= '9' {
		name = "_" + name
	}
	if !IsIdentifier(name) {
		var b strings.Builder
		for _, r := range name {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
				b.WriteRune(r)
			} else {
				b.WriteRune('_')
			}
		}
		name = b.String()
	}
	if IsReservedWord(name) {
		name += "_"
	}
	return name
}

// TypeNames assigns a distinct declaration name to every schema key.
// Keys that are already their own TypeName claim it first; the remaining
// keys follow in sorted order, and a key whose name is taken gets the
// smallest free numeric suffix. Names listed in taken are never assigned.
// Example: ["NoteList", "note-list"] -> {"NoteList": "NoteList", "note-list": "NoteList2"}
func TypeNames(keys []string, taken ...string) map[string]string {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	used := make(map[string]bool, len(keys)+len(taken))
	for _, name := range taken {
		used[name] = true
	}
	names := make(map[string]string, len(keys))
	claim := func(key string) {
		base := TypeName(key)
		name := base
		for n := 2; used[name]; n++ {
			name = base + strconv.Itoa(n)
		}
		used[name] = true
		names[key] = name
	}
	for _, key := range sorted {
		if TypeName(key) == key && !used[key] {
			claim(key)
		}
	}
	for _, key := range sorted {
		if _, ok := names[key]; !ok {
			claim(key)
		}
	}
	return names
}

// PropertyKey returns s as an object member key: bare when it is a valid
// identifier, double-quoted otherwise.
// Example: "title" -> "title", "x-trace-id" -> "\"x-trace-id\""
func PropertyKey(s string) string {
	if IsIdentifier(s) {
		return s
	}
	return strconv.Quote(s)
}
