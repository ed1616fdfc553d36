package pattern

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		in, delim, want string
	}{
		{"plain", "~", "plain"},
		{"~a.b~i", "~", `\~a\.b\~i`},
		{"/a/", "/", `\/a\/`},
		{"/a/", "~", "/a/"},
		{"#x#", "#", `\#x\#`},
		{"(a|b)*", "~", `\(a\|b\)\*`},
		{"x=y!<z>:-", "~", `x\=y\!\<z\>\:\-`},
		{"a\x00b", "~", `a\000b`},
		{`\d`, "~", `\\d`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in, tt.delim); got != tt.want {
			t.Errorf("Quote(%q, %q) = %q, want %q", tt.in, tt.delim, got, tt.want)
		}
	}
}
