package utils

import "testing"

func TestIsValidInput(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"hello", true},
		{"1234", false},
		{"aaaa", false},
		{"c@t", false},
		{"the", true},
	}
	for _, c := range cases {
		if got := IsValidInput(c.in); got != c.want {
			t.Errorf("IsValidInput(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidInputRejectsOverlongBadWord(t *testing.T) {
	letters := "abcdefghijklmnopqrstuvwxyz"
	long := ""
	for i := 0; i < MaxBadWordLen+1; i++ {
		long += string(letters[i%len(letters)])
	}
	if IsValidInput(long) {
		t.Fatalf("expected a %d-byte word past MaxBadWordLen to be rejected", len(long))
	}
}

func TestFormatWithCommas(t *testing.T) {
	if got := FormatWithCommas(999); got != "999" {
		t.Errorf("FormatWithCommas(999) = %q, want 999", got)
	}
	if got := FormatWithCommas(1000); got != "1,000" {
		t.Errorf("FormatWithCommas(1000) = %q, want 1,000", got)
	}
	if got := FormatWithCommas(1234567); got != "1,234,567" {
		t.Errorf("FormatWithCommas(1234567) = %q, want 1,234,567", got)
	}
}

func TestFileExistsAndEnsureDir(t *testing.T) {
	dir := t.TempDir() + "/nested"
	if FileExists(dir) {
		t.Fatal("expected dir to not exist yet")
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if !FileExists(dir) {
		t.Fatal("expected dir to exist after EnsureDir")
	}
}
