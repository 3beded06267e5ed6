package main

import (
	"gonum.org/v1/gonum/mat"
)

// ステップnにおける全ユニットの計算結果
type Conditions struct {
	theta_out_us_n  *mat.VecDense // ステップnにおけるユニットuの出口温度, degree C, [u, 1]
	x_w_out_us_n    *mat.VecDense // ステップnにおけるユニットuの出口絶対湿度, kg/kg(DA), [u, 1]
	q_flow_us_n     *mat.VecDense // ステップnにおけるユニットuの加熱量（冷却を負とする）, W, [u, 1]
	m_wat_flow_us_n *mat.VecDense // ステップnにおけるユニットuの加湿量（除湿を負とする）, kg/s, [u, 1]
}

func NewConditions(
	theta_out_us_n *mat.VecDense,
	x_w_out_us_n *mat.VecDense,
	q_flow_us_n *mat.VecDense,
	m_wat_flow_us_n *mat.VecDense,
) *Conditions {
	return &Conditions{
		theta_out_us_n:  theta_out_us_n,
		x_w_out_us_n:    x_w_out_us_n,
		q_flow_us_n:     q_flow_us_n,
		m_wat_flow_us_n: m_wat_flow_us_n,
	}
}
