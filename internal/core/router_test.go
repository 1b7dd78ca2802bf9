package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medbridge/pkg"
)

func TestRouteLanguagesDoctor(t *testing.T) {
	source, target := RouteLanguages(pkg.RoleDoctor, "English", "Tamil")
	assert.Equal(t, "English", source)
	assert.Equal(t, "Tamil", target)
}

func TestRouteLanguagesPatient(t *testing.T) {
	source, target := RouteLanguages(pkg.RolePatient, "English", "Tamil")
	assert.Equal(t, "Tamil", source)
	assert.Equal(t, "English", target)
}

func TestRouteLanguagesSwapProperty(t *testing.T) {
	pairs := [][2]string{
		{"English", "Tamil"},
		{"Hindi", "Spanish"},
		{"Tamil", "Tamil"},
		{"Spanish", "English"},
	}
	for _, p := range pairs {
		ds, dt := RouteLanguages(pkg.RoleDoctor, p[0], p[1])
		ps, pt := RouteLanguages(pkg.RolePatient, p[0], p[1])
		assert.Equal(t, [2]string{p[0], p[1]}, [2]string{ds, dt})
		assert.Equal(t, [2]string{p[1], p[0]}, [2]string{ps, pt})
	}
}
