package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"wordbag/internal/normalize"
)

func TestObserveDocument(t *testing.T) {
	run := NewRun()
	run.ObserveDocument(normalize.Stats{Tokens: 6, DroppedNonAlpha: 1, DroppedStopwords: 1, Kept: 4, Distinct: 4}, 20*time.Millisecond)
	run.ObserveDocument(normalize.Stats{Tokens: 2, Kept: 2, Distinct: 1}, time.Millisecond)

	if got := testutil.ToFloat64(run.documents); got != 2 {
		t.Fatalf("documents = %v, want 2", got)
	}
	checks := map[string]float64{
		StageTokenized: 8,
		StageNonAlpha:  1,
		StageStopword:  1,
		StageKept:      6,
	}
	for stage, want := range checks {
		if got := testutil.ToFloat64(run.tokens.WithLabelValues(stage)); got != want {
			t.Errorf("tokens{stage=%s} = %v, want %v", stage, got, want)
		}
	}
	if count := testutil.CollectAndCount(run.normalizeTime); count != 1 {
		t.Fatalf("expected one histogram series, got %d", count)
	}
}

func TestSetShapeAndDuplicates(t *testing.T) {
	run := NewRun()
	run.SetShape(36, 1200)
	run.ObserveDuplicate()
	if got := testutil.ToFloat64(run.rows); got != 36 {
		t.Fatalf("rows = %v", got)
	}
	if got := testutil.ToFloat64(run.vocabulary); got != 1200 {
		t.Fatalf("vocabulary = %v", got)
	}
	if got := testutil.ToFloat64(run.duplicateRows); got != 1 {
		t.Fatalf("duplicates = %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	run := NewRun()
	run.SetShape(4, 10)
	run.MarkSuccess(time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "collector", "wordbag.prom")
	if err := run.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"wordbag_matrix_rows 4",
		"wordbag_vocabulary_size 10",
		"wordbag_last_success_timestamp_seconds 1.7e+09",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}
}

func TestNilRunIsSafe(t *testing.T) {
	var run *Run
	run.ObserveDocument(normalize.Stats{}, 0)
	run.ObserveDuplicate()
	run.SetShape(1, 1)
	run.MarkSuccess(time.Now())
	if err := run.WriteTextfile("ignored"); err != nil {
		t.Fatalf("nil run should not write: %v", err)
	}
}
