package plan_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/amonks/unlockpath/plan"
)

func TestRank(t *testing.T) {
	cases := []struct {
		name  string
		input []string
		want  []plan.Ranked
	}{
		{
			name:  "empty",
			input: nil,
			want:  []plan.Ranked{},
		},
		{
			name:  "orders by count",
			input: []string{"x", "y", "y", "z", "y", "z"},
			want:  []plan.Ranked{{Item: "y", Count: 3}, {Item: "z", Count: 2}, {Item: "x", Count: 1}},
		},
		{
			name:  "ties keep first-seen order",
			input: []string{"c", "a", "b", "a", "c", "b"},
			want:  []plan.Ranked{{Item: "c", Count: 2}, {Item: "a", Count: 2}, {Item: "b", Count: 2}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := plan.Rank(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNoteStrings(t *testing.T) {
	cases := []struct {
		note plan.Note
		want string
	}{
		{plan.Note{Kind: plan.NoteKnown}, "already known"},
		{plan.Note{Kind: plan.NotePrerequisites}, "all prerequisites known"},
		{plan.Note{Kind: plan.NoteUnlockNow, Count: 3}, "will unlock 3 now"},
		{plan.Note{Kind: plan.NoteUsedIn, Count: 7}, "used in 7 remaining items"},
	}

	for _, tc := range cases {
		if got := tc.note.String(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestEntryJSONUsesNoteText(t *testing.T) {
	data, err := json.Marshal(plan.Entry{Item: "y", Note: plan.Note{Kind: plan.NoteUnlockNow, Count: 1}, Iteration: 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"item":"y","note":"will unlock 1 now","iteration":1}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestConsoleLoggerFormatsEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := plan.NewConsoleLogger(&buf)

	logger.Iteration(plan.IterationLog{Iteration: 2, Unlocked: 5, Locked: 3})
	logger.Promote(plan.PromoteLog{Iteration: 2, Pass: 1, Items: []string{"A", "B"}})
	logger.Batch(plan.BatchLog{
		Iteration:  2,
		Candidates: []plan.Ranked{{Item: "y", Count: 2}, {Item: "x", Count: 1}},
		Searched:   1,
		Chosen:     []string{"y", "x"},
		Count:      1,
	})
	logger.Batch(plan.BatchLog{Iteration: 3, Chosen: []string{"c"}, Count: 2, Fallback: true})

	output := ansiPattern.ReplaceAllString(buf.String(), "")
	checks := []string{
		"Iteration 2: 5 unlocked, 3 locked",
		"promoted 2 (pass 1):",
		"        A B",
		"candidates (1 subsets searched):",
		"y×2 x×1",
		"y x, will unlock 1 now",
		"c, used in 2 remaining items",
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Fatalf("expected output to include %q, got %q", check, output)
		}
	}
}

func TestConsoleLoggerWrapsLongLists(t *testing.T) {
	var buf bytes.Buffer
	logger := plan.NewConsoleLogger(&buf)

	items := make([]string, 40)
	for i := range items {
		items[i] = "item"
	}
	logger.Promote(plan.PromoteLog{Iteration: 1, Pass: 1, Items: items})

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) > 80 {
			t.Fatalf("expected wrapped lines, got %d columns: %q", len(line), line)
		}
	}
}

func TestNilConsoleLoggerIsSafe(t *testing.T) {
	var logger *plan.ConsoleLogger
	logger.Iteration(plan.IterationLog{})
	logger.Promote(plan.PromoteLog{})
	logger.Batch(plan.BatchLog{})
}
