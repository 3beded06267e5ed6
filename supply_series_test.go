package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSupplySeriesFromCsv(t *testing.T) {
	src := `m_flow,theta_in,x_w_in,theta_set,x_w_set
0.1,5.0,0.003,20.0,0.007
0.2,8.0,0.004,22.0,0.008
`
	file_path := filepath.Join(t.TempDir(), "supply_series.csv")
	if err := os.WriteFile(file_path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	ss := make_supply_series_from_csv(file_path)

	assert.Equal(t, 2, ss.number_of_data())
	assert.Equal(t, []float64{0.1, 0.2}, ss.m_flow_ns)
	assert.Equal(t, []float64{5.0, 8.0}, ss.theta_in_ns)
	assert.Equal(t, []float64{0.003, 0.004}, ss.x_w_in_ns)
	assert.Equal(t, []float64{20.0, 22.0}, ss.theta_set_ns)
	assert.Equal(t, []float64{0.007, 0.008}, ss.x_w_set_ns)
}

func TestMakeSupplySeriesFromCsvFileNotExist(t *testing.T) {
	assert.Panics(t, func() {
		make_supply_series_from_csv(filepath.Join(t.TempDir(), "no_such_file.csv"))
	})
}

func TestNewSupplySeriesLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewSupplySeries(
			[]float64{0.1, 0.2},
			[]float64{5.0},
			[]float64{0.003},
			[]float64{20.0},
			[]float64{0.007},
		)
	})
}
