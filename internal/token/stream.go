package token

import "github.com/google/uuid"

// Stream is a materialized token stream with lookahead and a rewind point,
// satisfying the lexer/parser boundary contract (peek/consume/mark/restore).
// It always terminates in a trailing EOF token so Peek never needs a
// separate "beyond the stream" case.
type Stream struct {
	tokens []Token
	pos    int
	unitID string
}

// NewStream wraps a token slice, appending a synthetic EOF if the caller
// didn't already terminate it with one. Each stream is stamped with a
// fresh correlation ID so a caller can tie one translation's log lines
// together without threading a request-scoped context through the parser.
func NewStream(tokens []Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		tokens = append(tokens, Token{Kind: EOF, Text: ""})
	}

	return &Stream{tokens: tokens, unitID: uuid.NewString()}
}

// UnitID returns this stream's correlation ID.
func (s *Stream) UnitID() string {
	return s.unitID
}

// Peek returns the token k positions ahead of the cursor without consuming
// it. k=0 is the current token. Requesting beyond the stream returns the
// trailing EOF token.
func (s *Stream) Peek(k int) Token {
	idx := s.pos + k
	if idx < 0 {
		idx = 0
	}

	if idx >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}

	return s.tokens[idx]
}

// Consume returns the current token and advances the cursor. Consuming past
// the end keeps returning EOF without advancing further.
func (s *Stream) Consume() Token {
	tok := s.Peek(0)

	if s.pos < len(s.tokens)-1 {
		s.pos++
	}

	return tok
}

// SplitGenericCloser splits a single '>' off the front of the current
// token when it's a longer `>`-prefixed operator (">>", ">>>", ">=",
// ">>=", ">>>="), leaving the remainder as the new current token and
// returning true. Returns false if the current token isn't `>`-prefixed
// or is already exactly ">" (nothing to split).
//
// The lexer has no way to know, looking at "List<List<T>>" in isolation,
// that two adjacent '>' characters close two separate generic argument
// lists rather than forming the single operator ">>" — it always prefers
// the longer match. The parser is the one with the context to tell the
// difference, so it's the one that undoes the greedy match when it turns
// out to be wrong.
func (s *Stream) SplitGenericCloser() bool {
	cur := s.tokens[s.pos]
	if cur.Kind != OP || len(cur.Text) < 2 || cur.Text[0] != '>' {
		return false
	}

	closer := Token{Kind: OP, Text: ">", Line: cur.Line, Col: cur.Col}
	remainder := Token{Kind: OP, Text: cur.Text[1:], Line: cur.Line, Col: cur.Col + 1}

	rest := make([]Token, 0, len(s.tokens)-s.pos)
	rest = append(rest, remainder)
	rest = append(rest, s.tokens[s.pos+1:]...)

	tokens := make([]Token, 0, len(s.tokens)+1)
	tokens = append(tokens, s.tokens[:s.pos]...)
	tokens = append(tokens, closer)
	tokens = append(tokens, rest...)

	s.tokens = tokens

	return true
}

// Mark returns an opaque rewind point for the current cursor position.
func (s *Stream) Mark() int {
	return s.pos
}

// Restore rewinds the cursor to a position previously returned by [Mark].
func (s *Stream) Restore(mark int) {
	s.pos = mark
}
