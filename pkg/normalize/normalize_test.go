package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coffee-urbantech/pos-api/pkg/normalize"
)

func TestFold_MinusculasYSinTildes(t *testing.T) {
	assert.Equal(t, "cafe americano", normalize.Fold("Café Americano"))
	assert.Equal(t, "te chai", normalize.Fold("Té Chai"))
	assert.Equal(t, "croissant", normalize.Fold("CROISSANT"))
}

func TestContainsFold_IgnoraMayusculasYTildes(t *testing.T) {
	assert.True(t, normalize.ContainsFold("Café Americano", "cafe"))
	assert.True(t, normalize.ContainsFold("Café Americano", "CAFÉ"))
	assert.True(t, normalize.ContainsFold("Té Chai", "te"))
	assert.False(t, normalize.ContainsFold("Croissant", "cafe"))
}
