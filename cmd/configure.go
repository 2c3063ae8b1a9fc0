package cmd

import (
	"context"
	"fmt"
	"io"

	"ecsh/internal/config"
	"ecsh/internal/prompt"
	"ecsh/internal/service/common"
)

// runConfigure はプロファイル名とクラスター名を尋ねて設定ファイルに保存する
func runConfigure(ctx context.Context, reader *prompt.Reader, out io.Writer, store *config.Store) error {
	profileName, err := reader.ReadText(ctx, "Profile name", config.DefaultProfile)
	if err != nil {
		return err
	}

	cluster, err := reader.ReadText(ctx, "Cluster name", "")
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Saving configuration file %s\n", store.Path())
	if err := store.Save(profileName, cluster); err != nil {
		return fmt.Errorf("%s failed to save configuration: %w", common.ErrorIcon, err)
	}
	fmt.Fprintf(out, "%s profile '%s' -> cluster '%s'\n", common.SuccessIcon, profileName, cluster)
	return nil
}
