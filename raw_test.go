package dynarr

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Poisoning must leave every GC-scanned element type alone, interface types
// included, and must fill pointer-free memory with the poison byte.
func TestPoisonSlotsSkipsScannedTypes(t *testing.T) {
	boxed := []any{"x", 1}
	poisonSlots(boxed)
	assert.Equal(t, []any{"x", 1}, boxed)

	ptrs := []*int{nil, nil}
	poisonSlots(ptrs)
	assert.Equal(t, []*int{nil, nil}, ptrs)

	strs := []string{"a", "b"}
	poisonSlots(strs)
	assert.Equal(t, []string{"a", "b"}, strs)

	raw := []uint32{0, 0}
	poisonSlots(raw)
	assert.Equal(t, []uint32{0xFFFFFFFF, 0xFFFFFFFF}, raw)
}

func TestTypeHasPointers(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeFor[int](), false},
		{"float array", reflect.TypeFor[[4]float64](), false},
		{"flat struct", reflect.TypeFor[struct{ a, b int }](), false},
		{"interface", reflect.TypeFor[any](), true},
		{"pointer", reflect.TypeFor[*int](), true},
		{"string", reflect.TypeFor[string](), true},
		{"slice", reflect.TypeFor[[]byte](), true},
		{"map", reflect.TypeFor[map[int]int](), true},
		{"struct with pointer field", reflect.TypeFor[struct{ p *int }](), true},
		{"array of pointers", reflect.TypeFor[[2]*int](), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeHasPointers(tt.typ))
		})
	}
}
