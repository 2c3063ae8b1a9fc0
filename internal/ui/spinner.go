package ui

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner は一覧取得中のスピナーを表示する
// 出力先が端末でない場合は何も表示しない
type Spinner struct {
	w       io.Writer
	enabled bool
}

// NewSpinner はfへ描画するSpinnerを作成する
func NewSpinner(f *os.File) *Spinner {
	return &Spinner{w: f, enabled: term.IsTerminal(int(f.Fd()))}
}

// NewSpinnerWriter は端末判定をせずwへ描画するSpinnerを作成する
func NewSpinnerWriter(w io.Writer, enabled bool) *Spinner {
	return &Spinner{w: w, enabled: enabled}
}

// Begin はスピナーを開始し、停止用の関数を返す
// 停止用の関数は複数回呼んでも安全
func (s *Spinner) Begin(description string) func() {
	if !s.enabled {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(s.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	stop := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-finished
			_ = bar.Finish()
		})
	}
}
