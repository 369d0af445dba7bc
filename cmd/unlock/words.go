package main

import "strings"

// headwordSeparators end the headword of a vocabulary line such as
// "配る くばる to distribute" or "購入「こうにゅう」".
const headwordSeparators = " \t・「"

// headword returns the leading word of a vocabulary list line.
func headword(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, headwordSeparators); i >= 0 {
		return line[:i]
	}
	return line
}

func without(items, drop []string) []string {
	if len(drop) == 0 {
		return items
	}
	dropped := make(map[string]bool, len(drop))
	for _, item := range drop {
		dropped[item] = true
	}
	kept := items[:0:0]
	for _, item := range items {
		if !dropped[item] {
			kept = append(kept, item)
		}
	}
	return kept
}
