package main

import "math"

const (
	floatsPerVertex = 6
	colorOffset     = 3

	// colorCycleSpeed is in radians per second
	colorCycleSpeed = 1.5
)

// vertices are interleaved position then color. Colors are overwritten every frame.
var vertices = []float32{
	-0.5, -0.5, 0, 1, 0, 0,
	0.5, -0.5, 0, 0, 1, 0,
	0, 0.5, 0, 0, 0, 1,
}

// channelAt returns a value in [0, 1] that cycles with t, shifted by phase radians
func channelAt(t, phase float64) float32 {
	return float32(0.5 + 0.5*math.Sin(t*colorCycleSpeed+phase))
}

// writeVertexColors updates the colors of the interleaved vertices for time t (in seconds).
// Each vertex is a third of a cycle ahead of the previous one, and within a vertex
// the channels are also a third of a cycle apart, so colors rotate around the triangle.
func writeVertexColors(verts []float32, t float64) {

	const third = 2 * math.Pi / 3

	vertCount := len(verts) / floatsPerVertex
	for i := 0; i < vertCount; i++ {

		vertPhase := float64(i) * third
		color := verts[i*floatsPerVertex+colorOffset : i*floatsPerVertex+colorOffset+3]

		color[0] = channelAt(t, vertPhase)
		color[1] = channelAt(t, vertPhase+third)
		color[2] = channelAt(t, vertPhase+2*third)
	}
}
