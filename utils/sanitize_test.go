package utils

import "testing"

func TestSanitizeHeaderFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"report.pdf", "report.pdf"},
		{"  spaced.txt  ", "spaced.txt"},
		{"bad\r\nname.txt", "badname.txt"},
		{`quo"ted.txt`, "quoted.txt"},
		{"", "download"},
		{"   ", "download"},
	}
	for _, tc := range cases {
		if got := SanitizeHeaderFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeHeaderFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSecureFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\temp\evil.exe`, "evil.exe"},
		{"nasty name?.log", "nasty_name_.log"},
		{"..", ""},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := SecureFilename(tc.in); got != tc.want {
			t.Errorf("SecureFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
