package cmd

var Version = "dev" // ビルド時に設定される

// バージョンは --version で表示する
// 位置引数はすべてプロファイル名として扱うため、versionサブコマンドは持たない
func init() {
	RootCmd.Version = Version
	RootCmd.SetVersionTemplate("ecsh version {{.Version}}\n")
}
