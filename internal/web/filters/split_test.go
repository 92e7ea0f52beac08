package filters

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want []string
	}{
		{"basic", "go, redis, gin", ",", []string{"go", "redis", "gin"}},
		{"empty pieces dropped", "a, b,,c ", ",", []string{"a", "b", "c"}},
		{"empty string", "", ",", nil},
		{"only separators", ", ,,  ,", ",", nil},
		{"default separator", "a, b", "", []string{"a", "b"}},
		{"custom separator", "a; b ;c", ";", []string{"a", "b", "c"}},
		{"no separator present", "  banco de dados  ", ",", []string{"banco de dados"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in, tt.sep)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q, %q) = %v, want %v", tt.in, tt.sep, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Split(%q, %q)[%d] = %q, want %q", tt.in, tt.sep, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitNoEmptyOrPaddedElements(t *testing.T) {
	inputs := []string{"a, b,,c ", " , ", "x", "", "a,,b, ,c,", "  lead, trail  "}
	for _, in := range inputs {
		for _, piece := range Split(in, ",") {
			if piece == "" {
				t.Errorf("Split(%q) produced an empty element", in)
			}
			if piece != strings.TrimSpace(piece) {
				t.Errorf("Split(%q) produced untrimmed element %q", in, piece)
			}
		}
	}
}

func TestFuncMapSplitOptionalSeparator(t *testing.T) {
	fm := FuncMap()
	split, ok := fm["split"].(func(string, ...string) []string)
	if !ok {
		t.Fatal("split helper has unexpected signature")
	}

	got := split("a, b, c")
	if len(got) != 3 {
		t.Fatalf("split without separator = %v, want 3 elements", got)
	}
	got = split("a|b", "|")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("split with separator = %v, want [a b]", got)
	}
}
