package ecs

import (
	"context"
	"strings"

	"ecsh/internal/cli"
)

// DefaultTerminal はWindows以外でexecute-commandを起動する端末エミュレータ
const DefaultTerminal = "xterm -e"

// LaunchMode はシェル接続の起動方法
type LaunchMode string

const (
	// LaunchWindow はOSに応じて新しいウィンドウで起動する
	LaunchWindow LaunchMode = "window"
	// LaunchInline は現在の端末で起動する
	LaunchInline LaunchMode = "inline"
)

// Launcher はタスク内の対話シェルを起動する
type Launcher interface {
	// Launch は起動したコマンドラインを返す
	Launch(ctx context.Context, opts ExecOptions) (string, error)
}

// ExecuteCommand はaws ecs execute-commandのコマンドラインを返す
func ExecuteCommand(goos string, opts ExecOptions) string {
	shell := opts.Shell
	if shell == "" {
		shell = DefaultShell
	}

	command := cli.NewAwsCommand(goos).Arg(
		"ecs", "execute-command",
		"--profile", opts.Profile,
		"--cluster", opts.Cluster,
		"--task", opts.TaskId,
	)
	if opts.ContainerName != "" {
		command.Arg("--container", opts.ContainerName)
	}
	command.Arg("--interactive", "--command").Quoted(shell)
	if opts.Region != "" {
		command.Arg("--region", opts.Region)
	}
	return command.String()
}

// NewLauncher はOSと起動方法に応じたLauncherを返す
func NewLauncher(goos string, mode LaunchMode, runner cli.Runner, terminal string) Launcher {
	if mode == LaunchInline {
		return &inlineLauncher{goos: goos, runner: runner}
	}
	if cli.IsWindows(goos) {
		return &windowsLauncher{runner: runner}
	}
	if strings.TrimSpace(terminal) == "" {
		terminal = DefaultTerminal
	}
	return &terminalLauncher{goos: goos, runner: runner, terminal: strings.TrimSpace(terminal)}
}

// windowsLauncher はstartで別ウィンドウに起動する
type windowsLauncher struct {
	runner cli.Runner
}

func (l *windowsLauncher) Launch(ctx context.Context, opts ExecOptions) (string, error) {
	command := "start " + ExecuteCommand("windows", opts)
	l.runner.Output(ctx, command)
	return command, nil
}

// terminalLauncher は端末エミュレータの中で起動する
type terminalLauncher struct {
	goos     string
	runner   cli.Runner
	terminal string
}

func (l *terminalLauncher) Launch(ctx context.Context, opts ExecOptions) (string, error) {
	command := l.terminal + " " + ExecuteCommand(l.goos, opts)
	l.runner.Output(ctx, command)
	return command, nil
}

// inlineLauncher は現在の端末に接続して起動する
type inlineLauncher struct {
	goos   string
	runner cli.Runner
}

func (l *inlineLauncher) Launch(ctx context.Context, opts ExecOptions) (string, error) {
	command := ExecuteCommand(l.goos, opts)
	return command, l.runner.Attach(ctx, command)
}
