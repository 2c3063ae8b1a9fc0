package ecs

import (
	"context"
	"strings"
)

// mockRunner はcli.Runnerのテスト実装
// 実行したコマンドを記録し、前方一致したレスポンスを返す
type mockRunner struct {
	Commands  []string
	Attached  []string
	Responses map[string]string
	AttachErr error
}

func newMockRunner() *mockRunner {
	return &mockRunner{Responses: make(map[string]string)}
}

func (m *mockRunner) AddResponse(prefix, output string) {
	m.Responses[prefix] = output
}

func (m *mockRunner) Output(_ context.Context, commandLine string) string {
	m.Commands = append(m.Commands, commandLine)

	// 最長一致のレスポンスを返す
	var best string
	for prefix := range m.Responses {
		if strings.HasPrefix(commandLine, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return ""
	}
	return m.Responses[best]
}

func (m *mockRunner) Attach(_ context.Context, commandLine string) error {
	m.Attached = append(m.Attached, commandLine)
	return m.AttachErr
}

// mockChooser はChooserのテスト実装
type mockChooser struct {
	Answers []int
	Err     error
	Calls   []string
}

func (m *mockChooser) ReadChoice(_ context.Context, message string, maxValue int) (int, error) {
	m.Calls = append(m.Calls, message)
	if m.Err != nil {
		return 0, m.Err
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}

// mockLauncher はLauncherのテスト実装
type mockLauncher struct {
	Launched []ExecOptions
	Err      error
}

func (m *mockLauncher) Launch(_ context.Context, opts ExecOptions) (string, error) {
	m.Launched = append(m.Launched, opts)
	return ExecuteCommand("linux", opts), m.Err
}

// recordingProgress はProgressの呼び出しを記録する
type recordingProgress struct {
	Begun []string
	Done  int
}

func (p *recordingProgress) Begin(description string) func() {
	p.Begun = append(p.Begun, description)
	return func() { p.Done++ }
}
