package textmatch

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Sat Sri Akal", "sat sri akal"},
		{"punctuation stripped", "Sat Sri Akal!", "sat sri akal"},
		{"whitespace collapsed", "SAT  Sri!", "sat sri"},
		{"leading trailing space", "  hello  ", "hello"},
		{"empty", "", ""},
		{"whitespace only", "   \t\n ", ""},
		{"digits kept", "lesson 2", "lesson 2"},
		{"gurmukhi preserved", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ"},
		{"mixed script and punctuation", "ਸਤ, ਸ੍ਰੀ. ਅਕਾਲ?", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ"},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"SAT  Sri!", "Sat Sri Akal", "  kiddan, ji?  ", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ!", ""}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	if Normalize("SAT  Sri!") != Normalize("sat sri") {
		t.Errorf("Normalize(%q) != Normalize(%q)", "SAT  Sri!", "sat sri")
	}
}
