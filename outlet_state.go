package main

// 容量制限の作用領域
type LimitRegime string

// 容量制限の作用領域の定数
const (
	LimitRegimeNone  LimitRegime = "none"  // 制限なし
	LimitRegimeUpper LimitRegime = "upper" // 上限のみ
	LimitRegimeLower LimitRegime = "lower" // 下限のみ
	LimitRegimeBoth  LimitRegime = "both"  // 上下限
)

/*
上限・下限それぞれの制限の有無から容量制限の作用領域を判定する。

    Args:
        restrict_max: 上限制限を行うか否か
        restrict_min: 下限制限を行うか否か

    Returns:
        容量制限の作用領域
*/
func get_limit_regime(restrict_max bool, restrict_min bool) LimitRegime {
	if restrict_max && restrict_min {
		return LimitRegimeBoth
	} else if restrict_max {
		return LimitRegimeUpper
	} else if restrict_min {
		return LimitRegimeLower
	} else {
		return LimitRegimeNone
	}
}

// 出口状態の設定計算への入力
// 値 v は搬送される示強性状態量（比エンタルピー, J/kg 又は 絶対湿度, kg/kg(DA)）を表す。
type SetpointRequest struct {
	v_set           float64     // 出口状態量の設定値
	v_in            float64     // 入口状態量
	m_flow_pos      float64     // 質量流量（0以上に下限処理済みのもの）, kg/s
	m_flow_non_zero float64     // 質量流量（ゼロから離して下限処理済みのもの）, kg/s
	cap_max         float64     // 状態量の増加方向の最大交換能力（制限しない場合は +inf）
	cap_min         float64     // 状態量の減少方向の最大交換能力（制限しない場合は -inf）
	regime          LimitRegime // 容量制限の作用領域
	delta_v         float64     // 状態量の平滑化幅
}

// 出口状態の設定計算の結果
type SetpointResult struct {
	v_out    float64 // 出口状態量
	flow_act float64 // 実際の交換量（熱量, W 又は 水分量, kg/s）
	dv_act   float64 // 実際の状態量変化
}

/*
容量制限を考慮して実際に実現できる出口状態量を計算する。

    Args:
        req: 出口状態の設定計算への入力

    Returns:
        出口状態の設定計算の結果

    Notes:
        制限なしの場合は設定値をそのまま実現する（dv_act = v_set - v_in が厳密に成立する）。
        制限ありの場合、単位質量流量あたりの変化量を
        [cap_min / m_flow_non_zero, cap_max / m_flow_non_zero]
        に平滑クリップする。平滑化幅 delta_v → 0 の極限で通常のクリップに一致する。
        勾配法による求解を前提とするため、不連続なクリップは行わない。
        m_flow_non_zero が 0 の場合はゼロ除算となり結果は保証されない。
        呼び出し側であらかじめ下限処理を行うこと。
        状態を持たないため、インスタンスが異なれば並列に評価してよい。
*/
func evaluate_setpoint(req SetpointRequest) SetpointResult {
	// 設定値を実現するために必要な状態量変化
	dv_set := req.v_set - req.v_in

	var dv_act float64
	switch req.regime {
	case LimitRegimeNone:
		dv_act = dv_set
	case LimitRegimeBoth:
		dv_act = smooth_limit(dv_set, req.cap_min/req.m_flow_non_zero, req.cap_max/req.m_flow_non_zero, req.delta_v)
	case LimitRegimeUpper:
		dv_act = smooth_min(dv_set, req.cap_max/req.m_flow_non_zero, req.delta_v)
	case LimitRegimeLower:
		dv_act = smooth_max(dv_set, req.cap_min/req.m_flow_non_zero, req.delta_v)
	default:
		panic("invalid limit regime")
	}

	return SetpointResult{
		v_out:    req.v_in + dv_act,
		flow_act: req.m_flow_pos * dv_act,
		dv_act:   dv_act,
	}
}
