package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseUnits(t *testing.T) {
	assert.Greater(t, Metre, 0.)
	assert.Greater(t, Second, 0.)
	assert.Greater(t, Hour, 0.)
	assert.Equal(t, 3600*Second, Hour)
	assert.Equal(t, 60*Minute, Hour)
	assert.Equal(t, 1000*Metre, Kilometre)
}

func TestSystem(t *testing.T) {
	{ // SI matches the package constants
		s := SI()
		assert.Equal(t, Metre, s.Metre)
		assert.Equal(t, Second, s.Second)
		assert.Equal(t, Hour, s.Hour)
		assert.Equal(t, 24*Hour, s.Day())
		assert.NoError(t, s.Validate())
	}
	{ // Scaled system keeps day == 24 hours exactly
		s := NewSystem(1.e-3, 1./60.)
		assert.Equal(t, 24*s.Hour, s.Day())
		assert.Equal(t, 3600*s.Second, s.Hour)
		assert.InDelta(t, 1., s.Kilometre(), 1.e-15)
		assert.InDelta(t, 1., s.Minute(), 1.e-15)
		assert.NoError(t, s.Validate())
	}
	{ // Non-positive scales are rejected
		assert.Error(t, System{Metre: 0, Second: 1, Hour: 3600}.Validate())
		assert.Error(t, System{Metre: 1, Second: -1, Hour: 3600}.Validate())
		assert.Error(t, System{Metre: 1, Second: 1, Hour: 0}.Validate())
	}
}
