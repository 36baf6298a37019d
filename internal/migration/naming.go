package migration

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingMode controls how a table name becomes part of a class name.
type NamingMode string

const (
	// NamingFirst uppercases only the first character: "order_items" -> "Order_items".
	NamingFirst NamingMode = "first"
	// NamingWords title-cases every word: "order_items" -> "OrderItems".
	NamingWords NamingMode = "words"
)

// ParseNamingMode parses a naming mode flag value. Empty means NamingFirst.
func ParseNamingMode(s string) (NamingMode, error) {
	switch NamingMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", NamingFirst:
		return NamingFirst, nil
	case NamingWords:
		return NamingWords, nil
	default:
		return "", fmt.Errorf("unknown naming mode %q (valid: first, words)", s)
	}
}

// ClassName returns "Create<Table>Table" for tableName.
func ClassName(tableName string, mode NamingMode) string {
	return "Create" + ToPascalCase(tableName, mode) + "Table"
}

// FileName returns the timestamped migration file name, e.g.
// "2024_01_02_030405_create_users_table.php".
func FileName(tableName string, at time.Time, ext string) string {
	return fmt.Sprintf("%04d_%02d_%02d_%02d%02d%02d_create_%s_table.%s",
		at.Year(), int(at.Month()), at.Day(),
		at.Hour(), at.Minute(), at.Second(),
		tableName, ext)
}

// ToPascalCase converts a table name according to mode.
func ToPascalCase(s string, mode NamingMode) string {
	if mode == NamingWords {
		caser := cases.Title(language.Und)
		words := splitWords(s)
		for i, word := range words {
			words[i] = caser.String(word)
		}
		return strings.Join(words, "")
	}
	return capitalize(s)
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, kebab-case).
func splitWords(s string) []string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	// Insert space before uppercase letters in camelCase/PascalCase
	var result strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsSpace(prev) && !unicode.IsUpper(prev) {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
		prev = r
	}

	return strings.Fields(result.String())
}
