package classify

import "testing"

func TestIsOther(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"http url", "http://example.com/a", true},
		{"https url", "https://t.co/xyz", true},
		{"www url", "www.kodland.com", true},
		{"url case insensitive", "HTTPS://EXAMPLE.COM", true},
		{"mention", "@kullanici", true},
		{"mention with underscore", "@ayse_91", true},
		{"hashtag", "#kodland", true},
		{"hashtag turkish letters", "#gündem", true},
		{"integer", "2024", true},
		{"decimal comma", "12,5", true},
		{"clock", "12:30", true},
		{"date", "25/08/2026", true},
		{"range dash", "3-5", true},
		{"emoji", "😀", true},
		{"word with emoji", "evet😀", true},
		{"punctuation only", "...", true},
		{"underscores only", "___", true},
		{"lone apostrophe", "'", true},
		{"turkish word", "kitap", false},
		{"english word", "weekend", false},
		{"apostrophe token", "selfie'yi", false},
		{"alphanumeric", "3g", false},
		{"number then letters", "2x2", false},
		{"at sign mid-token", "a@b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsOther(tt.in); got != tt.want {
				t.Errorf("IsOther(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
