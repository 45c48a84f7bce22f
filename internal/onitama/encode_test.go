package onitama

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInitialBoard(t *testing.T) {
	b, err := NewBoard(DefaultRules(), NewSeededSource(11))
	require.NoError(t, err)
	enc := b.Encode()
	assert.True(t, strings.HasPrefix(enc, "PPKPP/5/5/5/ppkpp b "), enc)

	decoded, err := DecodePosition(enc, ClassicCatalog())
	require.NoError(t, err)
	assert.Equal(t, enc, decoded.Encode())
	assert.Equal(t, b.Cardpile(), decoded.Cardpile())
	assert.ElementsMatch(t, b.Pieces(), decoded.Pieces())
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, enc := range []string{
		initialClassic,
		rejectFixture,
		"PPKPP/5/5/1p3/1pkpp r cat,dog chipmunk,moose fish",
		"2K2/5/5/5/2k2 r moose,fish dog,cat chipmunk",
	} {
		b := decode(t, enc)
		assert.Equal(t, enc, b.Encode())
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	bad := []string{
		"",
		"PPKPP/5/5/5/ppkpp b cat,dog fish,moose",
		"PPKPP/5/5/ppkpp b cat,dog fish,moose chipmunk",
		"PPKPP/5/5/5/ppkpp x cat,dog fish,moose chipmunk",
		"PPKPP/5/5/5/ppkpq b cat,dog fish,moose chipmunk",
		"PPKPP/6/5/5/ppkpp b cat,dog fish,moose chipmunk",
		"PPKPP/4/5/5/ppkpp b cat,dog fish,moose chipmunk",
		"PPKPPP/5/5/5/ppkpp b cat,dog fish,moose chipmunk",
		"PPKPP/5/5/5/ppkpp b cat dog,fish,moose chipmunk",
		"PPKPP/5/5/5/ppkpp b cat,dog fish,tiger chipmunk",
		"PPKPP/5/5/5/ppkpp b cat,cat fish,moose chipmunk",
		"PP1PP/5/5/5/pp1pp b cat,dog fish,moose chipmunk",
		"PPKPP/K4/5/5/ppkpp b cat,dog fish,moose chipmunk",
		"PPKPP/P4/5/5/ppkpp b cat,dog fish,moose chipmunk",
	}
	for _, enc := range bad {
		_, err := DecodePosition(enc, ClassicCatalog())
		assert.ErrorIs(t, err, ErrInvalidEncoding, enc)
	}
}
