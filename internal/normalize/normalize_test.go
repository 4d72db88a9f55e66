package normalize

import "testing"

func TestSmartStrip(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"  hello  ":                 "hello",
		"\n\n  first \n second \n ": "first\nsecond",
		"one\n\ntwo":                "one\n\ntwo",
		" \t \n ":                   "",
	}

	for input, expected := range cases {
		got := SmartStrip(input)
		if got != expected {
			t.Fatalf("SmartStrip(%q) expected %q, got %q", input, expected, got)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 10); got != "short" {
		t.Fatalf("expected unchanged preview, got %q", got)
	}
	if got := Preview("line one\nline two", 50); got != `line one\nline two` {
		t.Fatalf("expected escaped newline, got %q", got)
	}
	if got := Preview("abcdefgh", 5); got != "abcde..." {
		t.Fatalf("expected truncated preview, got %q", got)
	}
}
