package common

// TableColumn はテーブルの列定義
type TableColumn struct {
	Header string
	Width  int
}
