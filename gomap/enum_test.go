package gomap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type suit uint8

const (
	clubs suit = iota
	diamonds
	hearts
	spades
)

type level int

func TestEnum(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterEnum(r, map[suit]string{
		clubs:    "Clubs",
		diamonds: "Diamonds",
		hearts:   "Hearts",
		spades:   "Spades",
	}))
	opt := WithRegistry(r)

	require.Equal(t, `"Hearts"`, toText(t, hearts, opt))
	require.Equal(t, `"9"`, toText(t, suit(9), opt))
	require.Equal(t, `["Clubs","Spades"]`, toText(t, []suit{clubs, spades}, opt))
	require.Equal(t, "2", toText(t, hearts))

	require.Equal(t, spades, fromText[suit](t, `"Spades"`, opt))
	require.Equal(t, suit(9), fromText[suit](t, `"9"`, opt))
	require.Equal(t, diamonds, fromText[suit](t, `1`, opt))

	_, err := tryFromText[suit](`"Jokers"`, opt)
	require.ErrorIs(t, err, ErrConversion)
	_, err = tryFromText[suit](`"300"`, opt)
	require.ErrorIs(t, err, strconv.ErrRange)
	_, err = tryFromText[suit](`true`, opt)
	require.ErrorIs(t, err, ErrConversion)
}

func TestEnumSigned(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterEnum(r, map[level]string{-1: "Debug", 0: "Info"}))
	require.Equal(t, `"Debug"`, toText(t, level(-1), WithRegistry(r)))
	require.Equal(t, `"-4"`, toText(t, level(-4), WithRegistry(r)))
	require.Equal(t, level(-1), fromText[level](t, `"Debug"`, WithRegistry(r)))
	require.Equal(t, level(-4), fromText[level](t, `"-4"`, WithRegistry(r)))
}

func TestEnumRegisterErrors(t *testing.T) {
	r := NewRegistry()
	require.ErrorIs(t, RegisterEnum(r, map[suit]string{clubs: ""}), ErrRegister)
	require.ErrorIs(t, RegisterEnum(r, map[suit]string{clubs: "A", spades: "A"}), ErrRegister)
	require.ErrorIs(t, RegisterEnum(r, map[suit]string{clubs: "A"}, Constructor(func() suit { return 0 })), ErrRegister)
}
