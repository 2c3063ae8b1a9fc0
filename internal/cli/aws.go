package cli

import (
	"strings"
)

// AwsBinary はaws CLIの実行ファイル名
const AwsBinary = "aws"

const (
	// shellMetaChars を含む引数はクォートが必要
	shellMetaChars = " \t\n\"'&|;<>()$`\\*?[]#~%!{}"

	// posixExpansions はsh -cのダブルクォート内でも展開される文字
	posixExpansions = "$`\\\"!"
)

// CommandLine はシェルに渡すコマンドラインを組み立てる
// クォートの方法は実行するOSのシェル（sh / cmd.exe）に合わせる
type CommandLine struct {
	goos  string
	parts []string
}

// NewAwsCommand はaws CLIのコマンドラインを開始する
func NewAwsCommand(goos string) *CommandLine {
	return &CommandLine{goos: goos, parts: []string{AwsBinary}}
}

// Arg は必要な場合のみクォートして引数を追加する
func (c *CommandLine) Arg(args ...string) *CommandLine {
	for _, arg := range args {
		c.parts = append(c.parts, QuoteIfNeeded(c.goos, arg))
	}
	return c
}

// Quoted は引数を常にクォートして追加する
func (c *CommandLine) Quoted(arg string) *CommandLine {
	c.parts = append(c.parts, Quote(c.goos, arg))
	return c
}

// String はコマンドラインを返す
func (c *CommandLine) String() string {
	return strings.Join(c.parts, " ")
}

// AwsCommand はaws CLIのコマンドラインを組み立てる共通関数
func AwsCommand(goos string, args ...string) string {
	return NewAwsCommand(goos).Arg(args...).String()
}

// QuoteIfNeeded は空白やシェルのメタ文字を含む引数のみクォートする
func QuoteIfNeeded(goos, arg string) string {
	if arg == "" || strings.ContainsAny(arg, shellMetaChars) {
		return Quote(goos, arg)
	}
	return arg
}

// Quote は引数をシェルが展開しない形でクォートする
// POSIXでは展開される文字を含む場合のみシングルクォートを使う
func Quote(goos, arg string) string {
	if !IsWindows(goos) && strings.ContainsAny(arg, posixExpansions) {
		return SingleQuote(arg)
	}
	return DoubleQuote(arg)
}

// DoubleQuote は引数をダブルクォートで囲む
func DoubleQuote(arg string) string {
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// SingleQuote は引数をシングルクォートで囲む（'は'\''に置き換える）
func SingleQuote(arg string) string {
	return `'` + strings.ReplaceAll(arg, `'`, `'\''`) + `'`
}
