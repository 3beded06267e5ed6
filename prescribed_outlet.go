package main

import (
	"math"
)

// 出口状態規定ユニット
// 空気搬送経路上で出口温度・出口絶対湿度の設定値を能力の範囲内で実現する理想機器を表す。
type OutletUnit struct {
	id   int    // ID
	name string // 名前

	use_theta_set bool    // 出口温度の設定値を動的に追従するか否か
	theta_set_fix float64 // 追従しない場合に用いる出口温度の固定値, degree C
	use_x_w_set   bool    // 出口絶対湿度の設定値を動的に追従するか否か
	x_w_set_fix   float64 // 追従しない場合に用いる出口絶対湿度の固定値, kg/kg(DA)

	q_max     float64 // 最大加熱能力, W（制限しない場合は +inf）
	q_min     float64 // 最大冷却能力（負値）, W（制限しない場合は -inf）
	m_wat_max float64 // 最大加湿能力, kg/s（制限しない場合は +inf）
	m_wat_min float64 // 最大除湿能力（負値）, kg/s（制限しない場合は -inf）

	m_flow_small float64 // 質量流量の下限処理のしきい値, kg/s
	delta_h      float64 // 比エンタルピーの平滑化幅, J/kg
	delta_x_w    float64 // 絶対湿度の平滑化幅, kg/kg(DA)

	regime_h LimitRegime // 熱の容量制限の作用領域
	regime_x LimitRegime // 水分の容量制限の作用領域
}

// 出口状態規定ユニットの計算結果
type OutletState struct {
	theta_out  float64 // 出口温度, degree C
	x_w_out    float64 // 出口絶対湿度, kg/kg(DA)
	q_flow     float64 // 加熱量（冷却を負とする）, W
	m_wat_flow float64 // 加湿量（除湿を負とする）, kg/s
}

type OutletUnitInfo struct {
	OutletUnits []OutletUnitData `json:"outlet_units"`
}

// NOTE: 構造体のフィールドに対応するJSONキーが存在しない場合、そのフィールドにはゼロ値が設定されます。
type OutletUnitData struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Property struct {
		UseThetaSet    bool    `json:"use_theta_set"`
		ThetaSetFix    float64 `json:"theta_set_fix"`
		UseXWSet       bool    `json:"use_x_w_set"`
		XWSetFix       float64 `json:"x_w_set_fix"`
		RestrictHeat   bool    `json:"restrict_heat"`
		RestrictCool   bool    `json:"restrict_cool"`
		QMax           float64 `json:"q_max"`
		QMin           float64 `json:"q_min"`
		RestrictHumi   bool    `json:"restrict_humi"`
		RestrictDehumi bool    `json:"restrict_dehumi"`
		MWatMax        float64 `json:"m_wat_max"`
		MWatMin        float64 `json:"m_wat_min"`
		MFlowSmall     float64 `json:"m_flow_small"`
		DeltaH         float64 `json:"delta_h"`
		DeltaXW        float64 `json:"delta_x_w"`
	} `json:"property"`
}

/*
出口状態規定ユニットの情報を受け取り、ユニットのリストを生成する。

    Args:
        info: ユニットの情報

    Returns:
        出口状態規定ユニットのリスト

    Notes:
        制限フラグが false の場合、対応する能力値は無視され、能力は無制限（±inf）となる。
        m_flow_small, delta_h, delta_x_w が 0 の場合はデフォルト値を適用する。
        容量制限の作用領域は構築時に一度だけ判定する。
*/
func NewOutletUnits(info *OutletUnitInfo) []*OutletUnit {
	units := make([]*OutletUnit, len(info.OutletUnits))
	for i, d := range info.OutletUnits {
		units[i] = _create_outlet_unit(&d)
	}
	return units
}

func _create_outlet_unit(d *OutletUnitData) *OutletUnit {
	p := d.Property

	q_max := math.Inf(1)
	if p.RestrictHeat {
		q_max = p.QMax
	}
	q_min := math.Inf(-1)
	if p.RestrictCool {
		q_min = p.QMin
	}
	m_wat_max := math.Inf(1)
	if p.RestrictHumi {
		m_wat_max = p.MWatMax
	}
	m_wat_min := math.Inf(-1)
	if p.RestrictDehumi {
		m_wat_min = p.MWatMin
	}

	m_flow_small := p.MFlowSmall
	if m_flow_small == 0.0 {
		m_flow_small = 1e-4
	}
	if m_flow_small < 0.0 {
		panic("m_flow_small must be positive")
	}

	delta_h := p.DeltaH
	if delta_h == 0.0 {
		delta_h = 10.0
	}

	delta_x_w := p.DeltaXW
	if delta_x_w == 0.0 {
		delta_x_w = 1e-5
	}

	return &OutletUnit{
		id:            d.Id,
		name:          d.Name,
		use_theta_set: p.UseThetaSet,
		theta_set_fix: p.ThetaSetFix,
		use_x_w_set:   p.UseXWSet,
		x_w_set_fix:   p.XWSetFix,
		q_max:         q_max,
		q_min:         q_min,
		m_wat_max:     m_wat_max,
		m_wat_min:     m_wat_min,
		m_flow_small:  m_flow_small,
		delta_h:       delta_h,
		delta_x_w:     delta_x_w,
		regime_h:      get_limit_regime(p.RestrictHeat, p.RestrictCool),
		regime_x:      get_limit_regime(p.RestrictHumi, p.RestrictDehumi),
	}
}

/*
ステップnにおけるユニットの出口状態を計算する。

    Args:
        m_flow: 質量流量（逆流を負とする）, kg/s
        theta_in: 入口温度, degree C
        x_w_in: 入口絶対湿度, kg/kg(DA)
        theta_set: 出口温度の設定値, degree C
        x_w_set: 出口絶対湿度の設定値, kg/kg(DA)

    Returns:
        出口状態規定ユニットの計算結果

    Notes:
        逆流時（m_flow < 0）には交換量が負にならないよう、
        交換量の算定に用いる質量流量は 0 で下限処理する。
        また、単位質量流量あたりの能力の算定に用いる質量流量は
        ゼロ除算を避けるため m_flow_small で下限処理する。
        いずれの下限処理も微分可能性を保つため平滑maxで行う。
        設定比エンタルピーは入口の絶対湿度を用いて計算している。
        加湿・除湿による絶対湿度の変化は設定比エンタルピーに反映されない。
        （既知の不整合。挙動を変えないためそのままとしている。）
*/
func (self *OutletUnit) set_outlet_state(
	m_flow float64,
	theta_in float64,
	x_w_in float64,
	theta_set float64,
	x_w_set float64,
) OutletState {

	// 設定値の解決（設定値を追従しない場合は固定値を用いる）
	if !self.use_theta_set {
		theta_set = self.theta_set_fix
	}
	if !self.use_x_w_set {
		x_w_set = self.x_w_set_fix
	}

	// 交換量の算定に用いる質量流量, kg/s
	m_flow_pos := smooth_max(m_flow, 0.0, self.m_flow_small/4.0)

	// 単位質量流量あたりの能力の算定に用いる質量流量, kg/s
	m_flow_non_zero := smooth_max(m_flow, self.m_flow_small, self.m_flow_small/4.0)

	// 水分の交換
	res_x := evaluate_setpoint(SetpointRequest{
		v_set:           x_w_set,
		v_in:            x_w_in,
		m_flow_pos:      m_flow_pos,
		m_flow_non_zero: m_flow_non_zero,
		cap_max:         self.m_wat_max,
		cap_min:         self.m_wat_min,
		regime:          self.regime_x,
		delta_v:         self.delta_x_w,
	})

	// 熱の交換
	h_in := get_h_air(theta_in, x_w_in)
	h_set := get_h_air(theta_set, x_w_in)
	res_h := evaluate_setpoint(SetpointRequest{
		v_set:           h_set,
		v_in:            h_in,
		m_flow_pos:      m_flow_pos,
		m_flow_non_zero: m_flow_non_zero,
		cap_max:         self.q_max,
		cap_min:         self.q_min,
		regime:          self.regime_h,
		delta_v:         self.delta_h,
	})

	x_w_out := res_x.v_out
	theta_out := get_theta_air(res_h.v_out, x_w_out)

	return OutletState{
		theta_out:  theta_out,
		x_w_out:    x_w_out,
		q_flow:     res_h.flow_act,
		m_wat_flow: res_x.flow_act,
	}
}
