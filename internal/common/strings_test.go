package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "", UpperFirst(""))
	assert.Equal(t, "Sin", UpperFirst("sin"))
	assert.Equal(t, "DirichletEta", UpperFirst("dirichletEta"))
	assert.Equal(t, "Already", UpperFirst("Already"))
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"sin":           "Sin",
		"dirichlet_eta": "DirichletEta",
		"dirichletEta":  "DirichletEta",
		"lambertw":      "Lambertw",
		"a__b":          "AB",
	}

	for in, want := range tests {
		assert.Equal(t, want, CamelCase(in), in)
	}
}
