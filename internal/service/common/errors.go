package common

// メッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	InfoIcon    = "📋"
	ProcessIcon = "🔄"
	RocketIcon  = "🚀"
)

// メッセージフォーマット定数
const (
	// 選択
	SelectedFormat     = "%s Selected %s: %s"
	AutoSelectedFormat = "%s Only one %s running, selected: %s"

	// 接続
	ConnectingFormat = "%s Connecting to task '%s'..."
)
