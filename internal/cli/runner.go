package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Runner はシェル経由で外部コマンドを実行するインターフェース
type Runner interface {
	// Output はコマンドを実行し、標準出力を行単位で改行結合した文字列で返す
	// 起動失敗や非ゼロ終了はエラーとして返さず、取得できた出力のみを返す
	Output(ctx context.Context, commandLine string) string

	// Attach はコマンドを現在の端末に接続して実行する
	Attach(ctx context.Context, commandLine string) error
}

// ShellRunner はプラットフォームのシェルでコマンドを実行するRunner
type ShellRunner struct {
	goos   string
	logger *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner は実行中のOS向けのShellRunnerを作成する
func NewShellRunner(logger *slog.Logger) *ShellRunner {
	return &ShellRunner{
		goos:   runtime.GOOS,
		logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// IsWindows はWindows系OSかどうかを判定する
func IsWindows(goos string) bool {
	return goos == "windows"
}

// ShellCommand はOSに応じたシェル起動コマンドを返す
func ShellCommand(goos, commandLine string) (string, []string) {
	if IsWindows(goos) {
		return "cmd.exe", []string{"/c", commandLine}
	}
	return "sh", []string{"-c", commandLine}
}

// Output はコマンドを実行して標準出力を取得する
func (r *ShellRunner) Output(ctx context.Context, commandLine string) string {
	name, args := ShellCommand(r.goos, commandLine)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stderr = r.Stderr

	r.logger.Debug("running command", "command", commandLine)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		r.logger.Debug("failed to open stdout", "command", commandLine, "error", err)
		return ""
	}
	if err := cmd.Start(); err != nil {
		r.logger.Debug("failed to start command", "command", commandLine, "error", err)
		return ""
	}

	var output strings.Builder
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		output.WriteString(scanner.Text())
		output.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		r.logger.Debug("failed to read command output", "command", commandLine, "error", err)
	}

	// 終了コードは解釈しない
	if err := cmd.Wait(); err != nil {
		r.logger.Debug("command exited with error", "command", commandLine, "error", err)
	}

	return output.String()
}

// Attach はコマンドを標準入出力に接続して実行する
// 端末のCtrl-Cは接続先のシェルへ渡すため、contextのキャンセルではプロセスを止めない
func (r *ShellRunner) Attach(_ context.Context, commandLine string) error {
	name, args := ShellCommand(r.goos, commandLine)
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.logger.Debug("attaching command", "command", commandLine)
	return cmd.Run()
}
