package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/j2py/internal/token"
)

func TestStream_PeekConsumeMarkRestore(t *testing.T) {
	t.Parallel()

	toks := []token.Token{
		{Kind: token.IDENT, Text: "a"},
		{Kind: token.IDENT, Text: "b"},
	}
	s := token.NewStream(toks)

	assert.Equal(t, "a", s.Peek(0).Text)
	assert.Equal(t, "b", s.Peek(1).Text)
	assert.Equal(t, token.EOF, s.Peek(2).Kind)

	mark := s.Mark()

	assert.Equal(t, "a", s.Consume().Text)
	assert.Equal(t, "b", s.Consume().Text)
	assert.Equal(t, token.EOF, s.Consume().Kind)
	assert.Equal(t, token.EOF, s.Consume().Kind, "consuming past EOF stays at EOF")

	s.Restore(mark)
	assert.Equal(t, "a", s.Peek(0).Text)
}

func TestStream_AppendsSyntheticEOF(t *testing.T) {
	t.Parallel()

	s := token.NewStream([]token.Token{{Kind: token.IDENT, Text: "x"}})

	assert.Equal(t, "x", s.Consume().Text)
	assert.Equal(t, token.EOF, s.Consume().Kind)
}

func TestStream_UnitIDIsUniquePerStream(t *testing.T) {
	t.Parallel()

	a := token.NewStream([]token.Token{{Kind: token.IDENT, Text: "x"}})
	b := token.NewStream([]token.Token{{Kind: token.IDENT, Text: "x"}})

	require.NotEmpty(t, a.UnitID())
	assert.NotEqual(t, a.UnitID(), b.UnitID())
}

func TestStream_SplitGenericCloser(t *testing.T) {
	t.Parallel()

	s := token.NewStream([]token.Token{
		{Kind: token.OP, Text: ">>>"},
		{Kind: token.IDENT, Text: "tail"},
	})

	require.True(t, s.SplitGenericCloser())
	assert.Equal(t, ">", s.Peek(0).Text)
	assert.Equal(t, ">>", s.Peek(1).Text)
	assert.Equal(t, "tail", s.Peek(2).Text)

	s.Consume()

	require.True(t, s.SplitGenericCloser())
	assert.Equal(t, ">", s.Peek(0).Text)
	assert.Equal(t, ">", s.Peek(1).Text)
	assert.Equal(t, "tail", s.Peek(2).Text)
}

func TestStream_SplitGenericCloser_NothingToSplit(t *testing.T) {
	t.Parallel()

	s := token.NewStream([]token.Token{{Kind: token.OP, Text: ">"}})
	assert.False(t, s.SplitGenericCloser())

	s2 := token.NewStream([]token.Token{{Kind: token.IDENT, Text: "x"}})
	assert.False(t, s2.SplitGenericCloser())
}
