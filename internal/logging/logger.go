// Package logging はlog/slogのロガー生成をまとめる
//
// 利用者向けの表示は標準出力へfmtで行い、ロガーは診断情報（実行したコマンド、
// 無視したエラーなど）のみを標準エラーへ出力する。
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// EnvLogLevel はログレベルを指定する環境変数
const EnvLogLevel = "ECSH_LOG_LEVEL"

// New はテキスト形式でwへ出力するロガーを作成する
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With("app", "ecsh")
}

// Discard は何も出力しないロガーを返す
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel はレベル文字列をslog.Levelに変換する
// 不明な値はWARNとして扱う
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
