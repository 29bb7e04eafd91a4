// Package timing tracks per-frame delta time and a rolling average FPS.
//
// All functions are meant to be called from the main (render) thread.
package timing

import "time"

const fpsSampleCount = 60

type frameTimer struct {
	startTime      time.Time
	frameStartTime time.Time
	dt             float32

	frameTimes     [fpsSampleCount]float32
	frameTimeIndex int
	frameTimeCount int
	frameTimeSum   float32
}

func (ft *frameTimer) init(now time.Time) {
	*ft = frameTimer{startTime: now, frameStartTime: now}
}

func (ft *frameTimer) frameStarted(now time.Time) {
	ft.frameStartTime = now
}

func (ft *frameTimer) frameEnded(now time.Time) {

	ft.dt = float32(now.Sub(ft.frameStartTime).Seconds())

	// Rolling sum over the last fpsSampleCount frames
	ft.frameTimeSum -= ft.frameTimes[ft.frameTimeIndex]
	ft.frameTimes[ft.frameTimeIndex] = ft.dt
	ft.frameTimeSum += ft.dt

	ft.frameTimeIndex = (ft.frameTimeIndex + 1) % fpsSampleCount
	if ft.frameTimeCount < fpsSampleCount {
		ft.frameTimeCount++
	}
}

func (ft *frameTimer) avgFPS() float32 {

	if ft.frameTimeCount == 0 || ft.frameTimeSum <= 0 {
		return 0
	}

	return float32(ft.frameTimeCount) / ft.frameTimeSum
}

// frameTimesMs appends the recorded frame times, oldest first, to dst
func (ft *frameTimer) frameTimesMs(dst []float32) []float32 {

	start := ft.frameTimeIndex - ft.frameTimeCount
	if start < 0 {
		start += fpsSampleCount
	}

	for i := 0; i < ft.frameTimeCount; i++ {
		dst = append(dst, ft.frameTimes[(start+i)%fpsSampleCount]*1000)
	}

	return dst
}

var timer frameTimer

func Init() {
	timer.init(time.Now())
}

func FrameStarted() {
	timer.frameStarted(time.Now())
}

func FrameEnded() {
	timer.frameEnded(time.Now())
}

// DT returns the duration of the last full frame in seconds
func DT() float32 {
	return timer.dt
}

// ElapsedTime returns seconds since Init was called
func ElapsedTime() float32 {
	return float32(time.Since(timer.startTime).Seconds())
}

func GetAvgFPS() float32 {
	return timer.avgFPS()
}

// FrameTimesMs appends the durations of the last frames in milliseconds, oldest first, to dst
func FrameTimesMs(dst []float32) []float32 {
	return timer.frameTimesMs(dst)
}
