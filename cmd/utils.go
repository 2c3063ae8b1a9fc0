package cmd

import (
	"fmt"
	"io"
	"os"

	"ecsh/internal/config"
	"ecsh/internal/service/common"
	"ecsh/internal/service/ecs"
)

// resolveProfile は引数からプロファイル名を決定する
func resolveProfile(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.DefaultProfile
}

// resolveStackName はコマンドライン引数または環境変数からスタック名を決定する
func resolveStackName(out io.Writer) string {
	if stackName != "" {
		fmt.Fprintln(out, common.SearchIcon+" -Sオプションで指定されたスタック名 '"+stackName+"' を使用します")
		return stackName
	}
	envStack := os.Getenv("AWS_STACK_NAME")
	if envStack != "" {
		fmt.Fprintln(out, common.SearchIcon+" 環境変数 AWS_STACK_NAME の値 '"+envStack+"' を使用します")
	}
	return envStack
}

// resolveSetting はフラグ、設定ファイル、デフォルト値の順で値を決定する
func resolveSetting(flagValue string, store *config.Store, profile, key, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := store.Get(profile, key); v != "" {
		return v
	}
	return defaultValue
}

// launchMode は --inline の指定から起動方法を決定する
func launchMode() ecs.LaunchMode {
	if inline {
		return ecs.LaunchInline
	}
	return ecs.LaunchWindow
}

// openStore は --config または既定のパスの設定ファイルを開く
func openStore(out io.Writer) (*config.Store, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	store, err := config.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s failed to load configuration file %s: %w", common.ErrorIcon, path, err)
	}
	if store.Loaded() {
		fmt.Fprintf(out, "Loading configuration file %s\n", store.Path())
	}
	return store, nil
}
