package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"ecsh/internal/aws"
	"ecsh/internal/cli"
	"ecsh/internal/config"
	"ecsh/internal/logging"
	"ecsh/internal/prompt"
	"ecsh/internal/service/cfn"
	ecssvc "ecsh/internal/service/ecs"
	"ecsh/internal/ui"

	"github.com/spf13/cobra"
)

// runSession はサービスとタスクを選択してシェルに接続する
func runSession(ctx context.Context, cmd *cobra.Command, store *config.Store, profile string) error {
	out := cmd.OutOrStdout()
	logger := newLogger()

	fmt.Fprintln(out, ui.Banner(AppName, Version))
	fmt.Fprintln(out)

	awsCtx := &aws.Context{Profile: profile, Region: region}

	cluster, err := resolveCluster(ctx, out, store, profile, awsCtx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ui.KeyValue("Connect to Cluster", cluster))
	logger.Debug("resolved target", "profile", profile, "cluster", cluster, "region", region)

	runner := cli.NewShellRunner(logger)

	lister, err := newLister(ctx, runner, awsCtx, logger)
	if err != nil {
		return err
	}

	reader := prompt.New(cmd.InOrStdin(), out)
	defer reader.Close()

	session := &ecssvc.Session{
		Lister:        lister,
		Chooser:       reader,
		Launcher:      ecssvc.NewLauncher(runtime.GOOS, launchMode(), runner, resolveSetting(terminal, store, profile, config.KeyTerminal, ecssvc.DefaultTerminal)),
		Progress:      ui.NewSpinner(os.Stderr),
		Out:           out,
		Logger:        logger,
		Shell:         resolveSetting(shellPath, store, profile, config.KeyShell, ecssvc.DefaultShell),
		ContainerName: containerName,
	}

	result, err := session.Run(ctx, ecssvc.Options{
		Target: ecssvc.Target{Profile: profile, Cluster: cluster, Region: region},
		Filter: filterPattern,
	})
	if err != nil {
		return err
	}

	logger.Debug("session launched", "service", result.Service, "task", result.Task, "command", result.Command)
	return nil
}

// resolveCluster は --cluster、--stack、設定ファイルの順でクラスター名を決定する
func resolveCluster(ctx context.Context, out io.Writer, store *config.Store, profile string, awsCtx *aws.Context) (string, error) {
	if clusterName != "" {
		return clusterName, nil
	}

	if stack := resolveStackName(out); stack != "" {
		clients, err := aws.NewAwsClients(ctx, awsCtx)
		if err != nil {
			return "", fmt.Errorf("AWS設定の読み込みエラー: %w", err)
		}
		return cfn.GetClusterFromStack(ctx, clients.Cfn(), stack)
	}

	return config.ResolveCluster(store, profile)
}

// newLister は --sdk の有無に応じて一覧取得の実装を選ぶ
func newLister(ctx context.Context, runner cli.Runner, awsCtx *aws.Context, logger *slog.Logger) (ecssvc.Lister, error) {
	if !useSdk {
		return ecssvc.NewCLILister(runtime.GOOS, runner), nil
	}

	clients, err := aws.NewAwsClients(ctx, awsCtx)
	if err != nil {
		return nil, fmt.Errorf("AWS設定の読み込みエラー: %w", err)
	}
	return ecssvc.NewSDKLister(clients.Ecs(), logger), nil
}

// newLogger は --debug または ECSH_LOG_LEVEL に応じたロガーを作成する
func newLogger() *slog.Logger {
	level := os.Getenv(logging.EnvLogLevel)
	if debug {
		level = logging.LevelDebug
	}
	return logging.New(os.Stderr, level)
}
