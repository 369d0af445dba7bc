package main

import (
	"reflect"
	"testing"

	"github.com/amonks/unlockpath/graphfile"
)

func TestHeadword(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"配る くばる to distribute", "配る"},
		{"購入「こうにゅう」purchase", "購入"},
		{"お茶・おちゃ", "お茶"},
		{"  明日  ", "明日"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := headword(tc.line); got != tc.want {
			t.Fatalf("headword(%q): expected %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestWithout(t *testing.T) {
	got := without([]string{"明日", "晩", "月"}, []string{"晩"})
	if !reflect.DeepEqual(got, []string{"明日", "月"}) {
		t.Fatalf("unexpected items %q", got)
	}
}

func TestSplitInline(t *testing.T) {
	got, err := splitInline("一日, 十", graphfile.SplitRunes)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"一", "日", "十"}) {
		t.Fatalf("unexpected runes %q", got)
	}

	got, err = splitInline("stick,gun leaf", graphfile.SplitLines)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"stick", "gun", "leaf"}) {
		t.Fatalf("unexpected items %q", got)
	}
}
