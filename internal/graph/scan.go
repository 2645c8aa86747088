package graph

// scanner is a byte cursor over one filtergraph expression. Lookahead
// helpers never consume; callers advance explicitly with skip so that every
// error can report the exact source offset.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// offset returns the current byte position within the expression.
func (s *scanner) offset() int {
	return s.pos
}

// peek returns the next byte without consuming it.
func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// next consumes and returns the next byte.
func (s *scanner) next() (byte, bool) {
	c, ok := s.peek()
	if ok {
		s.pos++
	}
	return c, ok
}

// skip advances by n bytes, clamped to the end of the input.
func (s *scanner) skip(n int) {
	s.pos += n
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
}

// skipWS advances past whitespace.
func (s *scanner) skipWS() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\n', '\r', '\t':
			s.pos++
		default:
			return
		}
	}
}

// until returns the text from the cursor up to (not including) the first
// unescaped byte matching stop, or the rest of the input. A backslash
// escapes the following byte and both stay in the returned text verbatim.
// Nothing is consumed.
func (s *scanner) until(stop func(byte) bool) string {
	i := s.pos
	for i < len(s.src) {
		if s.src[i] == '\\' && i+1 < len(s.src) {
			i += 2
			continue
		}
		if stop(s.src[i]) {
			break
		}
		i++
	}
	return s.src[s.pos:i]
}

// untilByte returns the text up to the first occurrence of b. The second
// return is false when b does not occur. Nothing is consumed.
func (s *scanner) untilByte(b byte) (string, bool) {
	i := s.pos
	for i < len(s.src) {
		if s.src[i] == b {
			return s.src[s.pos:i], true
		}
		i++
	}
	return "", false
}

// remaining returns everything from the cursor to the end of the input.
func (s *scanner) remaining() string {
	return s.src[s.pos:]
}
