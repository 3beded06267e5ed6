package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// 給気条件の時系列データ
// 各ユニットに共通して与えられる入口空気状態・質量流量・設定値のステップ別の値を保持する。
type SupplySeries struct {
	m_flow_ns    []float64 // 質量流量（逆流を負とする）, kg/s, [n]
	theta_in_ns  []float64 // 入口温度, degree C, [n]
	x_w_in_ns    []float64 // 入口絶対湿度, kg/kg(DA), [n]
	theta_set_ns []float64 // 出口温度の設定値, degree C, [n]
	x_w_set_ns   []float64 // 出口絶対湿度の設定値, kg/kg(DA), [n]
}

type SupplySeriesRow struct {
	MFlow    float64 `csv:"m_flow"`
	ThetaIn  float64 `csv:"theta_in"`
	XWIn     float64 `csv:"x_w_in"`
	ThetaSet float64 `csv:"theta_set"`
	XWSet    float64 `csv:"x_w_set"`
}

/*
Args
	m_flow_ns 質量流量, kg/s, [n]
	theta_in_ns 入口温度, degree C, [n]
	x_w_in_ns 入口絶対湿度, kg/kg(DA), [n]
	theta_set_ns 出口温度の設定値, degree C, [n]
	x_w_set_ns 出口絶対湿度の設定値, kg/kg(DA), [n]
*/
func NewSupplySeries(
	m_flow_ns, theta_in_ns, x_w_in_ns, theta_set_ns, x_w_set_ns []float64,
) *SupplySeries {
	n := len(m_flow_ns)
	if len(theta_in_ns) != n || len(x_w_in_ns) != n || len(theta_set_ns) != n || len(x_w_set_ns) != n {
		panic("all series must have the same length")
	}

	return &SupplySeries{
		m_flow_ns:    m_flow_ns,
		theta_in_ns:  theta_in_ns,
		x_w_in_ns:    x_w_in_ns,
		theta_set_ns: theta_set_ns,
		x_w_set_ns:   x_w_set_ns,
	}
}

/*
給気条件の時系列データをCSVファイルから読み込む。

Args
	file_path 給気条件データのファイルのパス
Returns
	SupplySeries クラス
*/
func make_supply_series_from_csv(file_path string) *SupplySeries {

	// file is exist
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	// Open the CSV file
	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*SupplySeriesRow

	// Unmarshal the CSV data into the slice of SupplySeriesRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	if len(rows) == 0 {
		panic("Error Row length of the file should be 1 or more.")
	}

	f := func(getc func(row *SupplySeriesRow) float64) []float64 {
		ret := make([]float64, len(rows))
		for i := range rows {
			ret[i] = getc(rows[i])
		}
		return ret
	}

	return NewSupplySeries(
		f(func(row *SupplySeriesRow) float64 { return row.MFlow }),
		f(func(row *SupplySeriesRow) float64 { return row.ThetaIn }),
		f(func(row *SupplySeriesRow) float64 { return row.XWIn }),
		f(func(row *SupplySeriesRow) float64 { return row.ThetaSet }),
		f(func(row *SupplySeriesRow) float64 { return row.XWSet }),
	)
}

// データの数を取得する。
func (self *SupplySeries) number_of_data() int {
	return len(self.m_flow_ns)
}
