package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

/*
出口状態計算処理の実行

    Args:
        unit_data_path (str): ユニット計算条件JSONファイルへのパス
        series_data_path (str): 給気条件CSVファイルへのパス
        output_data_dir (str): 出力フォルダへのパス
*/
func run(
	unit_data_path string,
	series_data_path string,
	output_data_dir string,
) {
	// ---- 事前準備 ----

	// 出力ディレクトリの作成
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// ユニット計算条件JSONファイルの読み込み
	log.Printf("ユニット計算条件JSONファイルの読み込み開始")
	var info OutletUnitInfo
	if len(unit_data_path) >= 4 && unit_data_path[0:4] == "http" {
		resp, err := http.Get(unit_data_path)
		if err != nil {
			log.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Fatal(err)
		}
		json.Unmarshal(body, &info)
	} else {
		file, err := os.Open(unit_data_path)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		bytes, err := ioutil.ReadAll(file)
		if err != nil {
			log.Fatal(err)
		}
		json.Unmarshal(bytes, &info)
	}

	units := NewOutletUnits(&info)

	// 給気条件の読み込み
	log.Printf("Load supply series data from `%s`", series_data_path)
	ss := make_supply_series_from_csv(series_data_path)

	// ---- 計算 ----

	result := calc(units, ss)

	// ---- 計算結果ファイルの保存 ----

	result_path := filepath.Join(output_data_dir, "result_outlet_states.csv")
	log.Printf("Save calculation results data to `%s`", result_path)
	result.export_csv(result_path)
}

func main() {
	var unit_data string
	flag.StringVar(&unit_data, "input", "example/outlet_units.json", "計算を実行するユニット計算条件JSONファイル")

	var series_data string
	flag.StringVar(&series_data, "series", "example/supply_series.csv", "給気条件CSVファイル")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "出力フォルダ")

	// 引数を受け取る
	flag.Parse()

	// Print flag values
	fmt.Printf("unit_data: %s\n", unit_data)
	fmt.Printf("series_data: %s\n", series_data)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)

	start := time.Now()

	run(
		unit_data,
		series_data,
		output_data_dir,
	)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
