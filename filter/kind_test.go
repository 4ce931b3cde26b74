package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "nearest", Nearest.String())
	assert.Equal(t, "mitchell", CubicMitchell.String())
	assert.Equal(t, "mks2021", MKS2021.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 14)
	require.Equal(t, Nearest, kinds[0])
	require.Equal(t, MKS2021, kinds[len(kinds)-1])

	seen := make(map[Kind]bool)
	for _, k := range kinds {
		require.True(t, k.Valid())
		require.False(t, seen[k])
		seen[k] = true
	}
	require.False(t, numKinds.Valid())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	tests := []struct {
		name string
		want Kind
	}{
		{"Point", Nearest},
		{"  LANCZOS ", Lanczos3},
		{"catmull-rom", CatmullRom},
		{"catrom", CubicCatrom},
		{"Mitchell-Netravali", MitchellNetravali},
		{"b-spline", CubicBSpline},
		{"bilinear", Linear},
		{"gauss", Gauss},
		{"magic2013", MKS2013},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("sharpest")
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Contains(t, err.Error(), "sharpest")
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, k, got)
	}

	_, err := Kind(42).MarshalText()
	require.ErrorIs(t, err, ErrUnknownKind)

	var k Kind
	require.ErrorIs(t, k.UnmarshalText([]byte("nope")), ErrUnknownKind)
}

func TestKindMapKey(t *testing.T) {
	supports := make(map[Kind]float64)
	for _, k := range Kinds() {
		supports[k] = Resolve(k).Support
	}
	require.Len(t, supports, len(Kinds()))
	require.Equal(t, 4.5, supports[MKS2021])
}
