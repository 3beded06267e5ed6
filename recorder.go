package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// 計算結果の記録
type Recorder struct {
	_id_us  []int // ユニットのID, [u]
	_n_step int   // 記録するステップ数

	theta_out_us_ns  [][]float64 // ステップnにおけるユニットuの出口温度, degree C, [u][n]
	x_w_out_us_ns    [][]float64 // ステップnにおけるユニットuの出口絶対湿度, kg/kg(DA), [u][n]
	rh_out_us_ns     [][]float64 // ステップnにおけるユニットuの出口相対湿度, %, [u][n]
	q_flow_us_ns     [][]float64 // ステップnにおけるユニットuの加熱量（冷却を負とする）, W, [u][n]
	m_wat_flow_us_ns [][]float64 // ステップnにおけるユニットuの加湿量（除湿を負とする）, kg/s, [u][n]
}

func NewRecorder(n_step int, id_us []int) *Recorder {
	var r Recorder

	n_u := len(id_us)
	r._id_us = id_us
	r._n_step = n_step

	r.theta_out_us_ns = make([][]float64, n_u)
	r.x_w_out_us_ns = make([][]float64, n_u)
	r.rh_out_us_ns = make([][]float64, n_u)
	r.q_flow_us_ns = make([][]float64, n_u)
	r.m_wat_flow_us_ns = make([][]float64, n_u)

	for u := 0; u < n_u; u++ {
		r.theta_out_us_ns[u] = make([]float64, n_step)
		r.x_w_out_us_ns[u] = make([]float64, n_step)
		r.rh_out_us_ns[u] = make([]float64, n_step)
		r.q_flow_us_ns[u] = make([]float64, n_step)
		r.m_wat_flow_us_ns[u] = make([]float64, n_step)
	}

	return &r
}

/*
ステップnの計算結果を記録する。

    Args:
        n: ステップ
        theta_out_us_n: ユニットuの出口温度, degree C, [u]
        x_w_out_us_n: ユニットuの出口絶対湿度, kg/kg(DA), [u]
        q_flow_us_n: ユニットuの加熱量, W, [u]
        m_wat_flow_us_n: ユニットuの加湿量, kg/s, [u]

    Notes:
        出口相対湿度は出口温度と出口絶対湿度から算出して記録する。
*/
func (self *Recorder) recording(
	n int,
	theta_out_us_n mat.Vector,
	x_w_out_us_n mat.Vector,
	q_flow_us_n mat.Vector,
	m_wat_flow_us_n mat.Vector,
) {
	// ユニットuの出口水蒸気圧, Pa, [u]
	p_v_out_us_n := get_p_v_out_us_n(x_w_out_us_n)

	for u := 0; u < len(self._id_us); u++ {
		self.theta_out_us_ns[u][n] = theta_out_us_n.AtVec(u)
		self.x_w_out_us_ns[u][n] = x_w_out_us_n.AtVec(u)
		self.rh_out_us_ns[u][n] = get_rh(p_v_out_us_n[u], get_p_vs(theta_out_us_n.AtVec(u)))
		self.q_flow_us_ns[u][n] = q_flow_us_n.AtVec(u)
		self.m_wat_flow_us_ns[u][n] = m_wat_flow_us_n.AtVec(u)
	}
}

/*
記録した計算結果をCSVファイルに保存する。

    Args:
        file_path: 出力ファイルのパス
*/
func (self *Recorder) export_csv(file_path string) {
	file, err := os.Create(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	// ヘッダー行（ユニットIDごとに項目を並べる）
	header := []string{"step"}
	for _, id := range self._id_us {
		header = append(header,
			fmt.Sprintf("unit%d_theta_out", id),
			fmt.Sprintf("unit%d_x_w_out", id),
			fmt.Sprintf("unit%d_rh_out", id),
			fmt.Sprintf("unit%d_q_flow", id),
			fmt.Sprintf("unit%d_m_wat_flow", id),
		)
	}
	if err := w.Write(header); err != nil {
		panic(err)
	}

	for n := 0; n < self._n_step; n++ {
		row := []string{strconv.Itoa(n)}
		for u := range self._id_us {
			row = append(row,
				strconv.FormatFloat(self.theta_out_us_ns[u][n], 'f', -1, 64),
				strconv.FormatFloat(self.x_w_out_us_ns[u][n], 'f', -1, 64),
				strconv.FormatFloat(self.rh_out_us_ns[u][n], 'f', -1, 64),
				strconv.FormatFloat(self.q_flow_us_ns[u][n], 'f', -1, 64),
				strconv.FormatFloat(self.m_wat_flow_us_ns[u][n], 'f', -1, 64),
			)
		}
		if err := w.Write(row); err != nil {
			panic(err)
		}
	}
}
