package nlp

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "BONJOUR", "bonjour"},
		{"accents stripped", "génial", "genial"},
		{"punctuation removed", "Bonjour!", "bonjour"},
		{"mixed punctuation", "quoi?!.,;:", "quoi"},
		{"apostrophe kept", "qui t'a cree", "qui t'a cree"},
		{"whitespace collapsed", "bonjour   le\t monde", "bonjour le monde"},
		{"trimmed", "  bonjour  ", "bonjour"},
		{"slang cc", "cc", "bonjour"},
		{"slang slt", "slt", "bonjour"},
		{"slang bjr", "bjr", "bonjour"},
		{"slang cava", "cava", "comment vas tu"},
		{"slang only whole words", "accord", "accord"},
		{"slang in sentence", "slt tout le monde", "bonjour tout le monde"},
		{"accented punctuated sentence", "Où es-tu né ?", "ou es-tu ne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Bonjour!",
		"cc",
		"cava",
		"  Génial,   vraiment ?  ",
		"qui t'a cree",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeEquivalences(t *testing.T) {
	if Normalize("Bonjour!") != Normalize("bonjour") || Normalize("bonjour") != Normalize("BONJOUR") {
		t.Error("case/punctuation variants of bonjour should normalize identically")
	}
	if Normalize("cc") != Normalize("bonjour") {
		t.Error(`Normalize("cc") should equal Normalize("bonjour")`)
	}
	if Normalize("cava") != Normalize("comment vas tu") {
		t.Error(`Normalize("cava") should equal Normalize("comment vas tu")`)
	}
}
