package main

import (
	"log"

	"gonum.org/v1/gonum/mat"
)

// 逐次計算
type Sequence struct {
	units []*OutletUnit // 出口状態規定ユニット, [u]
	ss    *SupplySeries // 給気条件の時系列データ
	n_u   int           // ユニットの数
}

/*
Args:
	units: 出口状態規定ユニットのリスト
	ss: 給気条件の時系列データ
*/
func NewSequence(units []*OutletUnit, ss *SupplySeries) *Sequence {
	return &Sequence{
		units: units,
		ss:    ss,
		n_u:   len(units),
	}
}

/*
ステップnの計算を行う。

    Args:
        n: ステップ

    Returns:
        ステップnにおける全ユニットの計算結果

    Notes:
        ユニットは内部状態を持たないため、ステップ間の引き継ぎはない。
        各ユニットの評価は互いに独立であり、全ユニットに同一の給気条件を与える。
*/
func (self *Sequence) run_tick(n int) *Conditions {
	m_flow_n := self.ss.m_flow_ns[n]
	theta_in_n := self.ss.theta_in_ns[n]
	x_w_in_n := self.ss.x_w_in_ns[n]
	theta_set_n := self.ss.theta_set_ns[n]
	x_w_set_n := self.ss.x_w_set_ns[n]

	theta_out_us_n := mat.NewVecDense(self.n_u, nil)
	x_w_out_us_n := mat.NewVecDense(self.n_u, nil)
	q_flow_us_n := mat.NewVecDense(self.n_u, nil)
	m_wat_flow_us_n := mat.NewVecDense(self.n_u, nil)

	for u, unit := range self.units {
		state := unit.set_outlet_state(m_flow_n, theta_in_n, x_w_in_n, theta_set_n, x_w_set_n)

		theta_out_us_n.SetVec(u, state.theta_out)
		x_w_out_us_n.SetVec(u, state.x_w_out)
		q_flow_us_n.SetVec(u, state.q_flow)
		m_wat_flow_us_n.SetVec(u, state.m_wat_flow)
	}

	return NewConditions(theta_out_us_n, x_w_out_us_n, q_flow_us_n, m_wat_flow_us_n)
}

/*
メインプログラム

    Args:
        units: 出口状態規定ユニットのリスト
        ss: 給気条件の時系列データ

    Returns:
        計算結果を記録した Recorder クラス
*/
func calc(units []*OutletUnit, ss *SupplySeries) *Recorder {
	log.Printf("計算開始")

	// 本計算のステップ数
	n_step := ss.number_of_data()

	sqc := NewSequence(units, ss)

	id_us := make([]int, len(units))
	for u, unit := range units {
		id_us[u] = unit.id
	}

	result := NewRecorder(n_step, id_us)

	for n := 0; n < n_step; n++ {
		c_n := sqc.run_tick(n)
		result.recording(n, c_n.theta_out_us_n, c_n.x_w_out_us_n, c_n.q_flow_us_n, c_n.m_wat_flow_us_n)
	}

	log.Printf("計算終了")

	return result
}
