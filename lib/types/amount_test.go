package types

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert := assert.New(t)

	v, err := ParseAmount("1.5", 18)
	assert.NoError(err)
	assert.Equal("1500000000000000000", v.String())

	v, err = ParseAmount("25", 6)
	assert.NoError(err)
	assert.Equal("25000000", v.String())

	// full precision is allowed
	v, err = ParseAmount("0.000001", 6)
	assert.NoError(err)
	assert.Equal("1", v.String())
}

func TestParseAmountRejects(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseAmount("", 18)
	assert.ErrorIs(err, ErrEmptyAmount)

	_, err = ParseAmount("   ", 18)
	assert.ErrorIs(err, ErrEmptyAmount)

	_, err = ParseAmount("abc", 18)
	assert.ErrorIs(err, ErrBadAmount)

	_, err = ParseAmount("1.2.3", 18)
	assert.ErrorIs(err, ErrBadAmount)

	_, err = ParseAmount("0", 18)
	assert.ErrorIs(err, ErrNotPositive)

	_, err = ParseAmount("-3", 18)
	assert.ErrorIs(err, ErrNotPositive)

	_, err = ParseAmount("0.0000001", 6)
	assert.ErrorIs(err, ErrTooPrecise)
}

func TestFormatAmount(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.5", FormatAmount(big.NewInt(1500000), 6))
	assert.Equal("0.000001", FormatAmount(big.NewInt(1), 6))
	assert.Equal("0", FormatAmount(nil, 6))

	wei, _ := new(big.Int).SetString("2000000000000000000", 10)
	assert.Equal("2", FormatWei(wei))
}

func TestParseFormatRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{"1", "0.25", "1234.000001"} {
		v, err := ParseAmount(s, 6)
		assert.NoError(err)
		assert.Equal(s, FormatAmount(v, 6))
	}
}
