package codec

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEncodeDecimalUsaPunto(t *testing.T) {
	assert.Equal(t, "2.5", EncodeDecimal(dec("2.5")))
	assert.Equal(t, "1234.56", EncodeDecimal(dec("1234.56")))
	assert.Equal(t, "0", EncodeDecimal(decimal.Zero))
	assert.Equal(t, "3", EncodeDecimal(dec("3")))
}

func TestDecodeDecimal(t *testing.T) {
	casos := []struct {
		nombre string
		celda  string
		quiere string
	}{
		{"punto", "2.5", "2.5"},
		{"coma", "2,5", "2.5"},
		{"entero", "12", "12"},
		{"espacios", "  2.5  ", "2.5"},
		{"miles punto y coma decimal", "1.234,56", "1234.56"},
		{"miles coma y punto decimal", "1,234.56", "1234.56"},
		{"solo puntos repetidos", "1.234.567", "1234.567"},
		{"vacia", "", "0"},
		{"basura", "abc", "0"},
		{"mixta basura", "1.2x", "0"},
		{"negativo", "-5", "0"},
		{"coma inicial", ",5", "0.5"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := DecodeDecimal(c.celda)
			assert.True(t, got.Equal(dec(c.quiere)),
				"celda %q: quería %s, obtuve %s", c.celda, c.quiere, got)
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "2.5", "0.75", "1234.56", "10.05"} {
		d := dec(s)
		vuelta := DecodeDecimal(EncodeDecimal(d))
		assert.True(t, d.Equal(vuelta), "round trip de %s devolvió %s", s, vuelta)
	}
}

func TestBool(t *testing.T) {
	assert.Equal(t, "TRUE", EncodeBool(true))
	assert.Equal(t, "FALSE", EncodeBool(false))

	assert.True(t, DecodeBool("TRUE"))
	assert.True(t, DecodeBool("true"))
	assert.True(t, DecodeBool(" VERDADERO "))
	assert.True(t, DecodeBool("1"))
	assert.False(t, DecodeBool("FALSE"))
	assert.False(t, DecodeBool("FALSO"))
	assert.False(t, DecodeBool(""))
	assert.False(t, DecodeBool("qué"))

	assert.True(t, DecodeBool(EncodeBool(true)))
	assert.False(t, DecodeBool(EncodeBool(false)))
}

func TestTime(t *testing.T) {
	ahora := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	celda := EncodeTime(ahora)
	require.Equal(t, "2025-03-09T14:30:00Z", celda)
	assert.True(t, ahora.Equal(DecodeTime(celda)))

	assert.True(t, DecodeTime("no es fecha").IsZero())
	assert.True(t, DecodeTime("").IsZero())

	buenosAires := time.FixedZone("-03", -3*60*60)
	local := time.Date(2025, 3, 9, 11, 30, 0, 0, buenosAires)
	assert.Equal(t, "2025-03-09T14:30:00Z", EncodeTime(local))
}
