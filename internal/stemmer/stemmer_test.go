package stemmer

import "testing"

func TestPorterStem(t *testing.T) {
	p := NewPorter()

	tests := []struct {
		word string
		want string
	}{
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"cats", "cat"},
		{"feed", "feed"},
		{"agreed", "agre"},
		{"plastered", "plaster"},
		{"motoring", "motor"},
		{"sing", "sing"},
		{"hopeful", "hope"},
		{"relational", "relat"},
		{"generalizations", "gener"},
		{"reported", "report"},
		{"banks", "bank"},
		{"bank", "bank"},
		{"growth", "growth"},
		{"strong", "strong"},
		{"financial", "financi"},
		{"inflation", "inflat"},
		{"increased", "increas"},
		{"rates", "rate"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := p.Stem(tt.word); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

// Outputs of nltk.stem.PorterStemmer() in its default mode where it departs
// from the published algorithm.
func TestPorterNLTKExtensions(t *testing.T) {
	p := NewPorter()

	tests := []struct {
		word string
		want string
	}{
		// y stays after a vowel and after a lone leading consonant.
		{"day", "day"},
		{"days", "day"},
		{"key", "key"},
		{"today", "today"},
		{"pay", "pay"},
		{"money", "money"},
		{"enjoy", "enjoy"},
		{"happy", "happi"},
		{"try", "tri"},
		// four letter ies and ied keep their e.
		{"dies", "die"},
		{"ties", "tie"},
		{"tied", "tie"},
		{"spied", "spi"},
		{"flies", "fli"},
		// step 2 additions.
		{"hopefully", "hope"},
		{"carelessly", "careless"},
		{"geology", "geolog"},
		{"possibly", "possibl"},
		{"formally", "formal"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := p.Stem(tt.word); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestPorterWordsWithNothingBeforeSuffix(t *testing.T) {
	tests := []struct {
		mode Mode
		word string
		want string
	}{
		{ModeNLTK, "eed", "eed"},
		{ModeNLTK, "eeds", "eed"},
		{ModeNLTK, "eing", "e"},
		{ModeNLTK, "ied", "i"},
		{ModeNLTK, "ies", "i"},
		{ModeMartin, "eed", "eed"},
		{ModeMartin, "eeds", "eed"},
		{ModeMartin, "eing", "e"},
		{ModeMartin, "eings", "e"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.word, func(t *testing.T) {
			if got := New(tt.mode).Stem(tt.word); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestPorterMartinMode(t *testing.T) {
	p := New(ModeMartin)

	tests := map[string]string{
		"day":      "dai",
		"happy":    "happi",
		"caresses": "caress",
		"reported": "report",
		"banks":    "bank",
	}
	for word, want := range tests {
		if got := p.Stem(word); got != want {
			t.Errorf("Stem(%q) = %q, want %q", word, got, want)
		}
	}
	// Irregular forms only apply in nltk mode.
	if got := p.Stem("dying"); got == "die" {
		t.Errorf("Stem(dying) = %q in martin mode", got)
	}
}

func TestPorterIrregularForms(t *testing.T) {
	p := NewPorter()

	tests := map[string]string{
		"skies":   "sky",
		"dying":   "die",
		"news":    "news",
		"innings": "inning",
		"succeed": "succeed",
	}
	for word, want := range tests {
		if got := p.Stem(word); got != want {
			t.Errorf("Stem(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestPorterShortWordsUnchanged(t *testing.T) {
	for _, mode := range []Mode{ModeNLTK, ModeMartin} {
		p := New(mode)
		for _, word := range []string{"", "a", "is", "as", "us"} {
			if got := p.Stem(word); got != word {
				t.Errorf("%s: Stem(%q) = %q, want unchanged", mode, word, got)
			}
		}
	}
}

func TestPorterLowercases(t *testing.T) {
	if got := NewPorter().Stem("Banks"); got != "bank" {
		t.Fatalf("Stem(Banks) = %q, want bank", got)
	}
}

func TestPorterZeroValueIsNLTK(t *testing.T) {
	var p Porter
	if p.Mode() != ModeNLTK {
		t.Fatalf("zero value mode = %s", p.Mode())
	}
	if got := p.Stem("days"); got != "day" {
		t.Fatalf("Stem(days) = %q, want day", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeNLTK, false},
		{"nltk", ModeNLTK, false},
		{" Martin ", ModeMartin, false},
		{"snowball", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMode(%q) err = %v", tt.in, err)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
