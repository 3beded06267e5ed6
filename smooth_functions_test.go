package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothMaxConvergesToHardMax(t *testing.T) {
	// 平滑化幅を小さくしていくと通常の max に収束すること
	x1, x2 := 3.0, 5.0

	prev := math.Abs(smooth_max(x1, x2, 1.0) - 5.0)
	for _, dx := range []float64{0.1, 0.01, 0.001} {
		err := math.Abs(smooth_max(x1, x2, dx) - 5.0)
		assert.Less(t, err, prev)
		prev = err
	}
	assert.InDelta(t, 5.0, smooth_max(x1, x2, 0.001), 1e-6)
}

func TestSmoothMinConvergesToHardMin(t *testing.T) {
	x1, x2 := 3.0, 5.0

	prev := math.Abs(smooth_min(x1, x2, 1.0) - 3.0)
	for _, dx := range []float64{0.1, 0.01, 0.001} {
		err := math.Abs(smooth_min(x1, x2, dx) - 3.0)
		assert.Less(t, err, prev)
		prev = err
	}
	assert.InDelta(t, 3.0, smooth_min(x1, x2, 0.001), 1e-6)
}

func TestSmoothMaxFarFromCrossing(t *testing.T) {
	// 2値の差が平滑化幅より十分大きい領域では大きい方の値に漸近すること
	assert.InDelta(t, 100.0, smooth_max(100.0, 0.0, 1.0), 1e-2)
	assert.InDelta(t, -1.0, smooth_max(-1.0, -100.0, 1.0), 1e-2)
}

func TestSmoothLimitInsideInterval(t *testing.T) {
	// 区間の内側で境界から十分離れていれば恒等写像として振る舞うこと
	assert.InDelta(t, 0.0, smooth_limit(0.0, -10.0, 10.0, 0.1), 1e-3)
	assert.InDelta(t, 3.0, smooth_limit(3.0, -10.0, 10.0, 0.1), 1e-3)
}

func TestSmoothLimitOutsideInterval(t *testing.T) {
	// 区間の外側では境界値に漸近すること
	assert.InDelta(t, 10.0, smooth_limit(100.0, -10.0, 10.0, 0.1), 1e-3)
	assert.InDelta(t, -10.0, smooth_limit(-100.0, -10.0, 10.0, 0.1), 1e-3)
}

func TestSmoothLimitFirstDerivativeContinuity(t *testing.T) {
	// 有限の平滑化幅に対して、境界近傍でも1階微分が連続であること
	// （隣接点の数値微分の差が刻み幅に比例して小さいことを確認する）
	const dx = 0.5
	const h = 1e-4

	deriv := func(x float64) float64 {
		return (smooth_limit(x+h, -5.0, 5.0, dx) - smooth_limit(x-h, -5.0, 5.0, dx)) / (2.0 * h)
	}

	prev := deriv(-8.0)
	for x := -8.0 + 0.01; x <= 8.0; x += 0.01 {
		d := deriv(x)
		assert.Less(t, math.Abs(d-prev), 0.1)
		// 単調性（微分が負にならないこと）
		assert.GreaterOrEqual(t, d, -1e-9)
		prev = d
	}
}
