package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestGetPVs(t *testing.T) {
	// 20 degree C の飽和水蒸気圧はおよそ 2339 Pa
	assert.InDelta(t, 2339.0, get_p_vs(20.0), 5.0)

	// 0 degree C 前後で式の分岐が連続すること
	assert.InDelta(t, get_p_vs(-0.001), get_p_vs(0.001), 1.0)
}

func TestGetPVRoundTrip(t *testing.T) {
	// 絶対湿度 → 水蒸気圧 → 絶対湿度 の往復で値が戻ること
	for _, x := range []float64{0.001, 0.005, 0.010, 0.020} {
		assert.InDelta(t, x, get_x(get_p_v(x)), 1e-4)
	}
}

func TestGetRh(t *testing.T) {
	assert.InDelta(t, 50.0, get_rh(1000.0, 2000.0), 1e-9)

	// 20 degree C, x = 0.00726 kg/kgDA でおよそ相対湿度 50 %
	rh := get_rh(get_p_v(0.00726), get_p_vs(20.0))
	assert.InDelta(t, 50.0, rh, 1.0)
}

func TestGetPVOutUsN(t *testing.T) {
	x_out_us_n := mat.NewVecDense(2, []float64{0.005, 0.010})
	p_v_out_us_n := get_p_v_out_us_n(x_out_us_n)

	assert.Equal(t, 2, len(p_v_out_us_n))
	assert.InDelta(t, get_p_v(0.005), p_v_out_us_n[0], 1e-9)
	assert.InDelta(t, get_p_v(0.010), p_v_out_us_n[1], 1e-9)
}

func TestMoistAirEnthalpyRoundTrip(t *testing.T) {
	// 比エンタルピー → 温度 の逆算が往復で一致すること
	for _, theta := range []float64{-10.0, 0.0, 20.0, 35.0} {
		for _, x := range []float64{0.0, 0.005, 0.015} {
			h := get_h_air(theta, x)
			assert.InDelta(t, theta, get_theta_air(h, x), 1e-9)
		}
	}
}

func TestMoistAirEnthalpyValue(t *testing.T) {
	// 乾き空気（x = 0）の比エンタルピーは c_a * theta
	assert.InDelta(t, 20100.0, get_h_air(20.0, 0.0), 1e-6)

	// 20 degree C, x = 0.01 kg/kgDA でおよそ 45.5 kJ/kg(DA)
	assert.InDelta(t, 45479.2, get_h_air(20.0, 0.01), 0.1)
}
