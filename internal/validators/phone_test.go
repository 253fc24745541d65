package validators

import "testing"

func TestIsPhoneValid(t *testing.T) {
	cases := map[string]bool{
		"+505 8888-1234":   true,
		"(11) 98765-4321":  true,
		"88881234":         true,
		"":                 false,
		"12345":            false,
		"8888 abc 1234":    false,
		"505+88881234":     false,
		"1234567890123456": false,
	}

	for in, want := range cases {
		if got := IsPhoneValid(in); got != want {
			t.Errorf("IsPhoneValid(%q) = %v, want %v", in, got, want)
		}
	}
}
