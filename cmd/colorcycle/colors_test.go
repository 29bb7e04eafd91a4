package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyVerts() []float32 {
	v := make([]float32, len(vertices))
	copy(v, vertices)
	return v
}

func TestWriteVertexColorsKeepsPositions(t *testing.T) {

	v := copyVerts()
	writeVertexColors(v, 12.34)

	for i := 0; i < len(v)/floatsPerVertex; i++ {
		assert.Equal(t, vertices[i*floatsPerVertex:i*floatsPerVertex+3], v[i*floatsPerVertex:i*floatsPerVertex+3])
	}
}

func TestWriteVertexColorsRange(t *testing.T) {

	v := copyVerts()
	for step := 0; step < 200; step++ {

		writeVertexColors(v, float64(step)*0.1)

		for i := 0; i < len(v)/floatsPerVertex; i++ {
			for c := 0; c < 3; c++ {
				val := v[i*floatsPerVertex+colorOffset+c]
				assert.GreaterOrEqual(t, val, float32(0))
				assert.LessOrEqual(t, val, float32(1))
			}
		}
	}
}

func TestWriteVertexColorsPhases(t *testing.T) {

	v := copyVerts()
	writeVertexColors(v, 0)

	// sin(0) is zero so the first channel of the first vertex is mid gray
	assert.InDelta(t, 0.5, v[colorOffset], 1e-6)

	// The next vertex's red equals this vertex's green, since both are a third of a cycle ahead
	require.Equal(t, 3, len(v)/floatsPerVertex)
	assert.InDelta(t, v[colorOffset+1], v[floatsPerVertex+colorOffset], 1e-6)
	assert.InDelta(t, v[colorOffset+2], v[2*floatsPerVertex+colorOffset], 1e-6)
}

func TestWriteVertexColorsIsPeriodic(t *testing.T) {

	a := copyVerts()
	b := copyVerts()

	period := 2 * math.Pi / colorCycleSpeed
	writeVertexColors(a, 3)
	writeVertexColors(b, 3+period)

	assert.InDeltaSlice(t, a, b, 1e-5)
}
