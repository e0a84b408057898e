package distribution

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimation_AdditionRules(t *testing.T) {
	tests := []struct {
		name string
		x, y Estimation[float64]
		want Estimation[float64]
	}{
		{"just+just", Just(1.0), Just(2.0), Just(3.0)},
		{"just+rough", Just(1.0), Rough(2.0), Rough(3.0)},
		{"rough+just", Rough(1.0), Just(2.0), Rough(3.0)},
		{"rough+rough", Rough(1.0), Rough(2.0), Rough(3.0)},
		{"unknown+just", Unknown[float64](), Just(4.0), Rough(4.0)},
		{"unknown+rough", Unknown[float64](), Rough(4.0), Rough(4.0)},
		{"unknown+unknown", Unknown[float64](), Unknown[float64](), Unknown[float64]()},
		{"just+unknown", Just(5.0), Unknown[float64](), Just(5.0)},
		{"rough+unknown", Rough(5.0), Unknown[float64](), Rough(5.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.x.Add(tt.y))
		})
	}
}

func TestEstimation_OperatorsShareRules(t *testing.T) {
	assert.Equal(t, Just(6), Just(2).Mul(Just(3)))
	assert.Equal(t, Just(-1), Just(2).Sub(Just(3)))
	assert.Equal(t, Just(4), Just(12).Div(Just(3)))

	assert.Equal(t, Rough(3), Unknown[int]().Mul(Just(3)))
	assert.Equal(t, Rough(3), Unknown[int]().Sub(Just(3)))
	assert.Equal(t, Just(7), Just(7).Div(Unknown[int]()))
	assert.Equal(t, Rough(8), Rough(2).Mul(Just(4)))
}

func TestEstimation_DivideByZeroIsUnknown(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, Just(1).Div(Just(0)).IsKnown())
	})
	assert.False(t, Just(1.0).Div(Rough(0.0)).IsKnown())
}

func TestEstimation_UnknownOverZeroDegrades(t *testing.T) {
	assert.Equal(t, Rough(0), Unknown[int]().Div(Just(0)))
	assert.Equal(t, Rough(0.0), Unknown[float64]().Div(Rough(0.0)))
	assert.Equal(t, Unknown[int](), Unknown[int]().Div(Unknown[int]()))
}

func TestEstimation_Accessors(t *testing.T) {
	v, ok := Rough(2.5).Value()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, v, 0)

	_, ok = Unknown[float64]().Value()
	assert.False(t, ok)
	assert.InDelta(t, 9, Unknown[float64]().ValueOr(9), 0)
	assert.Nil(t, Unknown[int]().Ptr())

	x := 3
	assert.Equal(t, Just(3), Maybe(&x))
	assert.Equal(t, Unknown[int](), Maybe[int](nil))

	assert.Equal(t, "~2.5", Rough(2.5).String())
	assert.Equal(t, "?", Unknown[int]().String())
	assert.Equal(t, Rough(5.0), Rough(2.5).Map(func(v float64) float64 { return v * 2 }))
}

func TestEstimation_JSON(t *testing.T) {
	for _, e := range []Estimation[float64]{Just(1.5), Rough(0.25), Unknown[float64]()} {
		data, err := json.Marshal(e)
		require.NoError(t, err)

		var decoded Estimation[float64]
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, e, decoded, string(data))
	}

	data, err := json.Marshal(Unknown[int]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"precision":"unknown"}`, string(data))
}
