package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colorRequest struct {
	Color  string  `json:"color" validate:"required,color"`
	Accent *string `json:"accent" validate:"omitempty,color"`
}

func TestRegisterOneOf(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v, map[string]validator.Func{
		"color": OneOf([]string{"Red", "Blue"}),
	}))

	assert.NoError(t, v.Struct(colorRequest{Color: "Red"}))

	accent := "Blue"
	assert.NoError(t, v.Struct(colorRequest{Color: "Blue", Accent: &accent}))

	err := v.Struct(colorRequest{Color: "red"})
	require.Error(t, err)
	msgs := Messages(err, map[string]string{"color": "unknown color"})
	assert.Equal(t, []string{"color: unknown color"}, msgs)

	bad := "Green"
	err = v.Struct(colorRequest{Color: "Red", Accent: &bad})
	require.Error(t, err)
	assert.Equal(t, []string{`accent: failed on "color"`}, Messages(err, nil))
}
