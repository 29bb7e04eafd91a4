package main

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

func TestSplitViewport(t *testing.T) {

	w, h, aspect := splitViewport(1400, 700)
	assert.Equal(t, uint32(700), w)
	assert.Equal(t, uint32(700), h)
	assert.Equal(t, float32(1), aspect)

	w, h, aspect = splitViewport(1601, 900)
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(900), h)
	assert.InDelta(t, 800.0/900.0, aspect, 1e-6)
}

func TestSplitViewportNeverZero(t *testing.T) {

	w, h, aspect := splitViewport(1, 0)
	assert.Equal(t, uint32(1), w)
	assert.Equal(t, uint32(1), h)
	assert.Equal(t, float32(1), aspect)
}

func TestPropModelMat(t *testing.T) {

	m := propModelMat(&chairPositions[0], 0, chairScale)
	assert.InDelta(t, chairScale, m.Data[0][0], 1e-6)
	assert.InDelta(t, chairScale, m.Data[1][1], 1e-6)
	assert.InDelta(t, chairScale, m.Data[2][2], 1e-6)
	assert.InDelta(t, 3.5, m.Data[3][0], 1e-6)

	m = propModelMat(&treePositions[2], 2, 1)
	assert.InDelta(t, gglm.Cos32(40*gglm.Deg2Rad), m.Data[0][0], 1e-5)
	assert.InDelta(t, 1, m.Data[1][1], 1e-5)
	assert.InDelta(t, 4, m.Data[3][0], 1e-5)
	assert.InDelta(t, -4, m.Data[3][2], 1e-5)
}

func TestSceneLayout(t *testing.T) {

	assert.Len(t, treePositions, 3)
	assert.Len(t, chairPositions, 3)

	for i := range treePositions {
		assert.Zero(t, treePositions[i].Y(), "props stand on the ground")
		assert.Zero(t, chairPositions[i].Y(), "props stand on the ground")
	}
}
