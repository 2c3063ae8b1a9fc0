// Package prompt は対話的な入力の読み取りを提供する
//
// Readerは起動時に一度だけ作成し、利用する処理へ明示的に渡す。
// 入力が閉じられた場合やcontextがキャンセルされた場合はErrInterruptedを返す。
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrInterrupted は入力が閉じられたか、割り込みで中断されたことを表す
	ErrInterrupted = errors.New("input interrupted")

	// ErrNoChoices は選択肢が1つもない状態で選択を求められたことを表す
	ErrNoChoices = errors.New("no choices available")
)

type lineResult struct {
	line string
	err  error
}

// Reader は1つの入力ストリームから行単位で読み取る
type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	closer io.Closer

	mu     sync.Mutex
	broken bool
}

// New はReaderを作成する
// inがio.Closerを実装している場合、Closeで解放される
func New(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
	if c, ok := in.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// Close は入力リソースを解放する
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.broken = true
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// ReadChoice は1からmaxValueまでの番号を読み取る
// 数値以外や範囲外の入力は再入力を求める
func (r *Reader) ReadChoice(ctx context.Context, message string, maxValue int) (int, error) {
	if maxValue <= 0 {
		return 0, ErrNoChoices
	}

	for {
		fmt.Fprintf(r.out, "%s (1-%d): ", message, maxValue)

		text, err := r.readLine(ctx)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			fmt.Fprintln(r.out, "❌ Please enter a number")
			continue
		}
		if choice <= 0 || choice > maxValue {
			fmt.Fprintf(r.out, "❌ Please enter a number between 1 and %d\n", maxValue)
			continue
		}

		return choice, nil
	}
}

// ReadText は1行のテキストを読み取る
// 空入力の場合はdefaultValueを返し、defaultValueも空なら再入力を求める
func (r *Reader) ReadText(ctx context.Context, message, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(r.out, "%s[%s]: ", message, defaultValue)
		} else {
			fmt.Fprintf(r.out, "%s: ", message)
		}

		text, err := r.readLine(ctx)
		if err != nil {
			return "", err
		}

		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		if defaultValue != "" {
			return defaultValue, nil
		}
	}
}

// readLine は1行を読み取る
// 読み取りは別goroutineで行い、contextのキャンセルを待ち受ける
func (r *Reader) readLine(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.broken {
		r.mu.Unlock()
		return "", ErrInterrupted
	}
	r.mu.Unlock()

	if ctx.Err() != nil {
		r.markBroken()
		return "", ErrInterrupted
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := r.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// 読み取り中のgoroutineは放棄する
		r.markBroken()
		return "", ErrInterrupted
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return strings.TrimRight(res.line, "\r\n"), nil
			}
			r.markBroken()
			return "", fmt.Errorf("%w: %v", ErrInterrupted, res.err)
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

func (r *Reader) markBroken() {
	r.mu.Lock()
	r.broken = true
	r.mu.Unlock()
}
