package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ecsh/internal/prompt"
	"ecsh/internal/service/ecs"
	"ecsh/internal/ui"

	"github.com/spf13/cobra"
)

// AppName は起動時に表示するアプリケーション名
const AppName = "AWS ECS Shell"

// Exit codes
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130
)

var (
	clusterName   string
	stackName     string
	region        string
	shellPath     string
	containerName string
	terminal      string
	filterPattern string
	configPath    string

	configureMode bool
	inline        bool
	useSdk        bool
	debug         bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ecsh [profile]",
	Short: "ECSタスクを選択してシェルに接続",
	Long: `ECSクラスターのサービスとタスクを一覧から選択し、
aws ecs execute-command で対話シェルを開きます。

プロファイルを省略した場合は default プロファイルを使用します。
位置引数は常にプロファイル名として扱います（バージョンは --version で表示）。
プロファイルとクラスターの対応は --configure で設定ファイルに保存できます。`,
	Example: `  ecsh
  ecsh staging
  ecsh staging --filter 'api-*' --inline
  ecsh --configure`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if configureMode {
			reader := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			defer reader.Close()
			return runConfigure(cmd.Context(), reader, cmd.OutOrStdout(), store)
		}

		return runSession(cmd.Context(), cmd, store, resolveProfile(args))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	code := ExitCode(err)
	if code != ExitOK {
		if errors.Is(err, prompt.ErrInterrupted) {
			fmt.Fprintln(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
	}
	os.Exit(code)
}

// ExitCode はエラーを終了コードに変換する
// 実行中のタスクがない場合は正常終了として扱う
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ecs.ErrNoTasks):
		return ExitOK
	case errors.Is(err, prompt.ErrInterrupted):
		return ExitInterrupted
	default:
		return ExitError
	}
}

func init() {
	RootCmd.Flags().BoolVar(&configureMode, "configure", false, "プロファイルとクラスターを設定ファイルに保存")

	RootCmd.Flags().StringVarP(&clusterName, "cluster", "c", "", "ECSクラスター名（設定ファイルより優先）")
	RootCmd.Flags().StringVarP(&stackName, "stack", "S", "", "クラスターを含むCloudFormationスタック名")
	RootCmd.Flags().StringVarP(&region, "region", "R", "", "AWSリージョン")
	RootCmd.Flags().StringVar(&shellPath, "shell", "", "タスク内で起動するシェル（デフォルト: "+ecs.DefaultShell+"）")
	RootCmd.Flags().StringVar(&containerName, "container", "", "接続するコンテナ名")
	RootCmd.Flags().StringVar(&terminal, "terminal", "", "シェルを開く端末エミュレータ（デフォルト: \""+ecs.DefaultTerminal+"\"）")
	RootCmd.Flags().BoolVar(&inline, "inline", false, "新しいウィンドウを開かず現在の端末で接続")
	RootCmd.Flags().StringVarP(&filterPattern, "filter", "f", "", "サービス名のフィルタ（*?[] のglobまたは部分一致）")
	RootCmd.Flags().BoolVar(&useSdk, "sdk", false, "aws CLIの代わりにAWS SDKで一覧を取得")
	RootCmd.Flags().StringVar(&configPath, "config", "", "設定ファイルのパス（デフォルト: ~/.ecsh.yaml）")
	RootCmd.Flags().BoolVar(&debug, "debug", false, "デバッグログを標準エラーに出力")

	RootCmd.MarkFlagsMutuallyExclusive("cluster", "stack")
}
