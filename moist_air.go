package main

/*
湿り空気の比エンタルピーを計算する。

    Args:
        theta: 空気温度, degree C
        x: 絶対湿度, kg/kg(DA)

    Returns:
        湿り空気の比エンタルピー, J/kg(DA)

    Notes:
        h = c_a * theta + (c_wv * theta + l_wtr) * x
        乾き空気の顕熱に水蒸気の顕熱・潜熱を加えたもの。
*/
func get_h_air(theta, x float64) float64 {
	return get_c_a()*theta + (get_c_wv()*theta+get_l_wtr())*x
}

/*
湿り空気の比エンタルピーと絶対湿度から空気温度を逆算する。

    Args:
        h: 湿り空気の比エンタルピー, J/kg(DA)
        x: 絶対湿度, kg/kg(DA)

    Returns:
        空気温度, degree C
*/
func get_theta_air(h, x float64) float64 {
	return (h - get_l_wtr()*x) / (get_c_a() + get_c_wv()*x)
}
