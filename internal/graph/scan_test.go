package graph

import "testing"

func TestScannerPeekNext(t *testing.T) {
	sc := newScanner("ab")

	c, ok := sc.peek()
	if !ok || c != 'a' {
		t.Errorf("peek() = %q, %v, want 'a', true", c, ok)
	}
	if sc.offset() != 0 {
		t.Errorf("offset after peek = %d, want 0", sc.offset())
	}

	c, ok = sc.next()
	if !ok || c != 'a' {
		t.Errorf("next() = %q, %v, want 'a', true", c, ok)
	}
	c, ok = sc.next()
	if !ok || c != 'b' {
		t.Errorf("next() = %q, %v, want 'b', true", c, ok)
	}
	if _, ok := sc.next(); ok {
		t.Error("next() at end of input should report false")
	}
	if _, ok := sc.peek(); ok {
		t.Error("peek() at end of input should report false")
	}
}

func TestScannerSkipClamps(t *testing.T) {
	sc := newScanner("abc")
	sc.skip(100)
	if sc.offset() != 3 {
		t.Errorf("offset after over-skip = %d, want 3", sc.offset())
	}
	if sc.remaining() != "" {
		t.Errorf("remaining after over-skip = %q, want empty", sc.remaining())
	}
}

func TestScannerSkipWS(t *testing.T) {
	sc := newScanner(" \t\r\n scale")
	sc.skipWS()
	if got := sc.remaining(); got != "scale" {
		t.Errorf("remaining after skipWS = %q, want %q", got, "scale")
	}

	sc = newScanner("   ")
	sc.skipWS()
	if _, ok := sc.peek(); ok {
		t.Error("skipWS over all-whitespace input should consume everything")
	}
}

func TestScannerUntil(t *testing.T) {
	sc := newScanner("scale=320:240,vflip")
	name := sc.until(func(b byte) bool { return b == '=' || b == ',' })
	if name != "scale" {
		t.Errorf("until() = %q, want %q", name, "scale")
	}
	// until does not consume
	if sc.offset() != 0 {
		t.Errorf("offset after until = %d, want 0", sc.offset())
	}

	sc = newScanner("vflip")
	rest := sc.until(func(b byte) bool { return b == '=' })
	if rest != "vflip" {
		t.Errorf("until() with no stop byte = %q, want %q", rest, "vflip")
	}
}

func TestScannerUntilSkipsEscapedBytes(t *testing.T) {
	stop := func(b byte) bool { return b == ',' || b == ';' || b == '[' }

	tests := []struct {
		src  string
		want string
	}{
		{`text=hello\, world,vflip`, `text=hello\, world`},
		{`a\;b;c`, `a\;b`},
		{`a\[b[x]`, `a\[b`},
		{`trailing\`, `trailing\`},
	}
	for _, tt := range tests {
		sc := newScanner(tt.src)
		if got := sc.until(stop); got != tt.want {
			t.Errorf("until(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestScannerUntilByte(t *testing.T) {
	sc := newScanner("main]rest")
	got, ok := sc.untilByte(']')
	if !ok || got != "main" {
		t.Errorf("untilByte(']') = %q, %v, want %q, true", got, ok, "main")
	}

	sc = newScanner("no terminator")
	if _, ok := sc.untilByte(']'); ok {
		t.Error("untilByte should report false when the byte is absent")
	}
}
