package main

import (
	"math"
)

/*
2つの値の大きい方を連続微分可能な近似で求める。

    Args:
        x1: 値1
        x2: 値2
        dx: 平滑化幅（x1とx2の差がこの値を下回る領域で丸めが生じる）

    Returns:
        max(x1, x2) の平滑化近似値

    Notes:
        y = (x1 + x2 + sqrt((x1 - x2)^2 + dx^2)) / 2
        dx → 0 の極限で max(x1, x2) に一致する。
        |x1 - x2| >> dx の領域では大きい方の値そのものに漸近する。
*/
func smooth_max(x1, x2, dx float64) float64 {
	d := x1 - x2
	return 0.5 * (x1 + x2 + math.Sqrt(d*d+dx*dx))
}

/*
2つの値の小さい方を連続微分可能な近似で求める。

    Args:
        x1: 値1
        x2: 値2
        dx: 平滑化幅

    Returns:
        min(x1, x2) の平滑化近似値

    Notes:
        y = (x1 + x2 - sqrt((x1 - x2)^2 + dx^2)) / 2
        dx → 0 の極限で min(x1, x2) に一致する。
*/
func smooth_min(x1, x2, dx float64) float64 {
	d := x1 - x2
	return 0.5 * (x1 + x2 - math.Sqrt(d*d+dx*dx))
}

/*
値を区間 [l, u] に連続微分可能な近似でクリップする。

    Args:
        x: 値
        l: 下限値
        u: 上限値
        dx: 平滑化幅

    Returns:
        上限でのsmooth min をとった後に下限で smooth max をとった値

    Notes:
        区間の内側で境界から十分離れていれば x をそのまま返し、
        境界の近傍および外側では境界値に漸近する。
        l + dx > u - dx となるような狭い区間では両側の丸めが干渉するため、
        dx は区間幅に対して十分小さくとること。
*/
func smooth_limit(x, l, u, dx float64) float64 {
	return smooth_max(smooth_min(x, u, dx), l, dx)
}
