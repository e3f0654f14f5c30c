package planet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeScale(t *testing.T) {
	tests := []struct {
		name       string
		size       Size
		wantScale  int
		wantRadius int
	}{
		{name: "small", size: SizeSmall, wantScale: 5, wantRadius: 3},
		{name: "medium", size: SizeMedium, wantScale: 10, wantRadius: 5},
		{name: "large", size: SizeLarge, wantScale: 15, wantRadius: 8},
		{name: "unknown", size: Size("giant"), wantScale: 0, wantRadius: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantScale, tt.size.Scale())
			assert.Equal(t, tt.wantRadius, tt.size.Radius())
		})
	}
}

func TestSizeIsValid(t *testing.T) {
	for _, s := range Sizes() {
		assert.True(t, s.IsValid(), "catalog member %q must be valid", s)
	}

	assert.False(t, Size("").IsValid())
	assert.False(t, Size("giant").IsValid())
	assert.False(t, Size("Small").IsValid(), "size names are case sensitive")
}

func TestSizesCatalogOrder(t *testing.T) {
	catalog := Sizes()

	assert.Equal(t, []Size{SizeSmall, SizeMedium, SizeLarge}, catalog)
	for i := 1; i < len(catalog); i++ {
		assert.Less(t, catalog[i-1].Scale(), catalog[i].Scale())
	}
}

func TestNameFor(t *testing.T) {
	assert.Equal(t, "Planet I", NameFor(0))
	assert.Equal(t, "Planet II", NameFor(1))
	assert.Equal(t, "Planet Outer", NameFor(17))
	assert.Equal(t, "Planet I", NameFor(18), "names cycle once the pool is spent")
}
