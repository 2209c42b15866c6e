package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestPeriodsReferenceRange(t *testing.T) {
	periods, err := Periods(1994, 2002, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Periods: %v", err)
	}
	if len(periods) != 36 {
		t.Fatalf("expected 36 periods, got %d", len(periods))
	}
	if periods[0].Key() != "1994Q1" || periods[35].Key() != "2002Q4" {
		t.Fatalf("unexpected bounds %s..%s", periods[0], periods[35])
	}
	if periods[4].Key() != "1995Q1" {
		t.Fatalf("expected year rollover at index 4, got %s", periods[4])
	}
}

func TestPeriodsNormalizesQuarters(t *testing.T) {
	periods, err := Periods(2000, 2000, []int{3, 1, 3})
	if err != nil {
		t.Fatalf("Periods: %v", err)
	}
	if got := Keys(periods); !slices.Equal(got, []string{"2000Q1", "2000Q3"}) {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestPeriodsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		quarters   []int
	}{
		{"reversed", 2002, 1994, []int{1}},
		{"no quarters", 1994, 1994, nil},
		{"quarter five", 1994, 1994, []int{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Periods(tt.start, tt.end, tt.quarters); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "1994Q1", want: Period{1994, 1}},
		{in: " 2002q4 ", want: Period{2002, 4}},
		{in: "1994Q5", wantErr: true},
		{in: "Q1", wantErr: true},
		{in: "1994Q", wantErr: true},
		{in: "abcdQ1", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePeriod(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestDirSourceRead(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1994Q1.txt"), []byte("Banks reported."), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "1994Q2.txt"), []byte("bad \xff byte"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := DirSource{Dir: dir, Pattern: "{period}.txt"}

	doc, err := src.Read(context.Background(), Period{1994, 1})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Text != "Banks reported." || doc.Key() != "1994Q1" {
		t.Fatalf("unexpected document %+v", doc)
	}

	doc, err = src.Read(context.Background(), Period{1994, 2})
	if err != nil {
		t.Fatalf("Read invalid utf8: %v", err)
	}
	if doc.Text != "bad � byte" {
		t.Fatalf("expected replacement character, got %q", doc.Text)
	}

	_, err = src.Read(context.Background(), Period{1994, 3})
	if !errors.Is(err, ErrResourceMissing) {
		t.Fatalf("expected ErrResourceMissing, got %v", err)
	}
}

func TestDirSourceDefaultPattern(t *testing.T) {
	src := DirSource{Dir: "/data"}
	if got := src.Path(Period{2001, 3}); got != filepath.Join("/data", "2001Q3.txt") {
		t.Fatalf("unexpected path %q", got)
	}
	src.Pattern = "statements/{period}/text.txt"
	if got := src.Path(Period{2001, 3}); got != filepath.Join("/data", "statements", "2001Q3", "text.txt") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestSourcesHonourCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (MapSource{"1994Q1": "x"}).Read(ctx, Period{1994, 1}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := (DirSource{Dir: t.TempDir()}).Read(ctx, Period{1994, 1}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMissing(t *testing.T) {
	src := MapSource{"1994Q1": "a", "1994Q3": "c"}
	periods, _ := Periods(1994, 1994, []int{1, 2, 3, 4})
	missing, err := Missing(context.Background(), src, periods)
	if err != nil {
		t.Fatalf("Missing: %v", err)
	}
	if got := Keys(missing); !slices.Equal(got, []string{"1994Q2", "1994Q4"}) {
		t.Fatalf("unexpected missing %v", got)
	}
}
