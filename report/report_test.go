package report

import (
	"strings"
	"testing"
)

func TestMissingAndOwned(t *testing.T) {
	owned := map[int]int{1: 1, 3: 2, 5: 1}
	missing := Missing(owned, 6)
	want := []int{2, 4, 6}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("missing = %v, want %v", missing, want)
		}
	}
	got := Owned(owned)
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 5 {
		t.Fatalf("owned = %v", got)
	}
}

func TestSummarise(t *testing.T) {
	owned := map[int]int{1: 3, 2: 1, 7: 2}
	st := Summarise(owned, 10)
	if st.Owned != 3 || st.Missing != 7 || st.Total != 10 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if st.Duplicates != 3 { // two spares of #1, one of #7
		t.Fatalf("duplicates = %d, want 3", st.Duplicates)
	}
	if st.Progress < 29.9 || st.Progress > 30.1 {
		t.Fatalf("progress = %f, want ~30", st.Progress)
	}
	if !strings.Contains(st.String(), "Duplicates for exchange: 3") {
		t.Fatalf("unexpected rendering: %q", st.String())
	}
}

func TestDuplicates(t *testing.T) {
	dup := Duplicates(map[int]int{4: 1, 9: 4, 12: 2})
	if len(dup) != 2 || dup[9] != 3 || dup[12] != 1 {
		t.Fatalf("duplicates = %v", dup)
	}
}

func TestFormatNumbers_ChunksOfTen(t *testing.T) {
	numbers := make([]int, 13)
	for i := range numbers {
		numbers[i] = i + 1
	}
	out := FormatNumbers(numbers)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "1, 2, 3, 4, 5, 6, 7, 8, 9, 10" {
		t.Fatalf("first line: %q", lines[0])
	}
	if lines[1] != "11, 12, 13" {
		t.Fatalf("second line: %q", lines[1])
	}
	if FormatNumbers(nil) != "" {
		t.Fatalf("expected empty rendering for no numbers")
	}
}
