package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ecsh/cmd"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func main() {
	docsDir := "./docs"

	// 既存のdocsディレクトリをクリーン
	if err := os.RemoveAll(docsDir); err != nil {
		log.Fatalf("Failed to clean docs directory: %v", err)
	}

	if err := os.MkdirAll(docsDir, 0755); err != nil {
		log.Fatalf("Failed to create docs directory: %v", err)
	}

	// ルートコマンドはdocs/README.mdとして生成
	if err := genMarkdown(cmd.RootCmd, filepath.Join(docsDir, "README.md")); err != nil {
		log.Fatalf("Failed to generate root documentation: %v", err)
	}

	fileCount := 1
	for _, subCmd := range cmd.RootCmd.Commands() {
		if !subCmd.IsAvailableCommand() || subCmd.IsAdditionalHelpTopicCommand() {
			continue
		}
		filename := filepath.Join(docsDir, subCmd.Name()+".md")
		if err := genMarkdown(subCmd, filename); err != nil {
			log.Printf("Failed to generate documentation for %s: %v", subCmd.Name(), err)
			continue
		}
		fileCount++
	}

	fmt.Printf("✅ Documentation generated in %s (%d files)\n", docsDir, fileCount)
}

// linkHandler はドキュメント内のリンクをファイル名に合わせる
// ecsh -> README, ecsh_version -> version
func linkHandler(name string) string {
	name = strings.TrimSuffix(name, ".md")
	if name == "ecsh" {
		return "README.md"
	}
	return strings.TrimPrefix(name, "ecsh_") + ".md"
}

// genMarkdown は単一のコマンドのドキュメントを生成
func genMarkdown(c *cobra.Command, filename string) error {
	buf := new(bytes.Buffer)
	c.DisableAutoGenTag = true
	if err := doc.GenMarkdownCustom(c, buf, linkHandler); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
