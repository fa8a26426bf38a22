package cli

import "testing"

func TestLogLanguage(t *testing.T) {
	tests := []struct {
		name         string
		explicit     string
		allLanguages bool
		want         string
	}{
		{"no flag shows every language", "", false, ""},
		{"explicit lang filters", "Tagalog", false, "tagalog"},
		{"all-languages overrides lang", "tagalog", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logLanguage(tt.explicit, tt.allLanguages); got != tt.want {
				t.Errorf("logLanguage(%q, %v) = %q, want %q", tt.explicit, tt.allLanguages, got, tt.want)
			}
		})
	}
}
