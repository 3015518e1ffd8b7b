package fusemodel_test

import (
	"os"
	"testing"

	"github.com/fossabot/bohrium/fusemodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, value string, unset bool) {
	t.Helper()
	old, hadOld := os.LookupEnv(fusemodel.EnvVar)
	if unset {
		require.NoError(t, os.Unsetenv(fusemodel.EnvVar))
	} else {
		require.NoError(t, os.Setenv(fusemodel.EnvVar, value))
	}
	t.Cleanup(func() {
		if hadOld {
			os.Setenv(fusemodel.EnvVar, old)
		} else {
			os.Unsetenv(fusemodel.EnvVar)
		}
	})
}

func TestTextCanonicalNames(t *testing.T) {
	cases := map[fusemodel.Model]string{
		fusemodel.Broadest:                  "broadest",
		fusemodel.SameShape:                 "same_shape",
		fusemodel.SameShapeRange:            "same_shape_range",
		fusemodel.SameShapeRandom:           "same_shape_random",
		fusemodel.SameShapeRangeRandom:      "same_shape_range_random",
		fusemodel.SameShapeGenerate1DReduce: "same_shape_generate_1dreduce",
	}
	for model, want := range cases {
		assert.Equal(t, want, fusemodel.Text(model))
	}
}

func TestTextUnknownAndUnset(t *testing.T) {
	assert.Equal(t, "unknown", fusemodel.Text(fusemodel.Unset))
	assert.Equal(t, "unknown", fusemodel.Text(fusemodel.Model(9999)))
}

func TestResolveDefaultsWhenUnset(t *testing.T) {
	withEnv(t, "", true)
	assert.Equal(t, fusemodel.Broadest, fusemodel.Resolve())
}

func TestResolveCaseInsensitive(t *testing.T) {
	withEnv(t, "Same_Shape", false)
	assert.Equal(t, fusemodel.SameShape, fusemodel.Resolve())
}

func TestResolveAllRecognizedNames(t *testing.T) {
	for _, model := range fusemodel.All() {
		withEnv(t, fusemodel.Text(model), false)
		assert.Equal(t, model, fusemodel.Resolve())
	}
}

func TestResolveUnrecognizedFallsBackAndFixesEnv(t *testing.T) {
	withEnv(t, "garbage", false)
	got := fusemodel.Resolve()
	assert.Equal(t, fusemodel.Broadest, got)
	assert.Equal(t, "broadest", os.Getenv(fusemodel.EnvVar))
}

func TestConfigErrorMessage(t *testing.T) {
	err := fusemodel.NewConfigError("no fuse model selected")
	assert.Equal(t, "bohrium: no fuse model selected", err.Error())
}
