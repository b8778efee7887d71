package model

import (
	"strings"
	"unicode"
)

// IsName reports whether word is a case-insensitive prefix of any
// whitespace-separated keyword in namelist. An empty word never matches.
// CircleMUD reference: handler.c isname() — abbreviations are accepted,
// so "swo" matches "sword long".
func IsName(word, namelist string) bool {
	if word == "" {
		return false
	}
	for _, name := range strings.Fields(namelist) {
		if len(word) <= len(name) && strings.EqualFold(word, name[:len(word)]) {
			return true
		}
	}
	return false
}

// FName returns the leading alphanumeric run of a keyword list:
// the first name an item goes by.
func FName(namelist string) string {
	for i, r := range namelist {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return namelist[:i]
		}
	}
	return namelist
}

// An returns "an" for words starting with a vowel, "a" otherwise.
func An(word string) string {
	if word == "" {
		return "a"
	}
	switch unicode.ToLower(rune(word[0])) {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
