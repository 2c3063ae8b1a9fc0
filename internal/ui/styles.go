package ui

import "github.com/charmbracelet/lipgloss"

var (
	// 見出し
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	LabelStyle = lipgloss.NewStyle().Bold(true)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// 状態表示
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Banner は起動時の見出しを組み立てる
func Banner(appName, version string) string {
	return HeaderStyle.Render(appName) + " " + InfoStyle.Render("- version "+version)
}

// KeyValue は「ラベル: 値」形式の1行を組み立てる
func KeyValue(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}
