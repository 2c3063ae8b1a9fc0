package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintNumberedList は選択肢を「1) name」形式で表示する
func PrintNumberedList(w io.Writer, items []string) {
	for i, item := range items {
		fmt.Fprintf(w, "%d) %s\n", i+1, item)
	}
}

// PrintTable はテーブル形式でデータを表示する
// 列幅は表示幅（全角文字は2）で計算する
func PrintTable(w io.Writer, title string, columns []TableColumn, data [][]string) {
	if title != "" {
		fmt.Fprintf(w, "\n%s:\n", title)
	}

	// 各列の最大幅を計算（ヘッダーとデータの中で最大値を取得）
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = max(col.Width, runewidth.StringWidth(col.Header))
	}
	for _, row := range data {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
			}
		}
	}

	// ヘッダー
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = runewidth.FillRight(col.Header, colWidths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))

	// 区切り線
	for i := range columns {
		cells[i] = strings.Repeat("-", colWidths[i])
	}
	fmt.Fprintln(w, strings.Join(cells, " "))

	// データ行
	for _, row := range data {
		line := make([]string, 0, len(columns))
		for i, cell := range row {
			if i < len(columns) {
				line = append(line, runewidth.FillRight(cell, colWidths[i]))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(line, " "), " "))
	}
}
