package ecs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCommand(t *testing.T) {
	tests := []struct {
		name string
		opts ExecOptions
		want string
	}{
		{
			name: "default shell",
			opts: ExecOptions{Target: Target{Profile: "dev", Cluster: "c1"}, TaskId: "t1"},
			want: `aws ecs execute-command --profile dev --cluster c1 --task t1 --interactive --command "/bin/sh"`,
		},
		{
			name: "container region and shell",
			opts: ExecOptions{
				Target:        Target{Profile: "dev", Cluster: "c1", Region: "ap-northeast-1"},
				TaskId:        "t1",
				ContainerName: "app",
				Shell:         "/bin/bash",
			},
			want: `aws ecs execute-command --profile dev --cluster c1 --task t1 --container app --interactive --command "/bin/bash" --region ap-northeast-1`,
		},
		{
			name: "shell expansions stay literal",
			opts: ExecOptions{
				Target:        Target{Profile: "dev", Cluster: "c$(id)"},
				TaskId:        "t1",
				ContainerName: "app`id`",
				Shell:         "/bin/sh -c 'echo $HOME'",
			},
			want: "aws ecs execute-command --profile dev --cluster 'c$(id)' --task t1 --container 'app`id`'" +
				` --interactive --command '/bin/sh -c '\''echo $HOME'\'''`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExecuteCommand("linux", tt.opts))
		})
	}
}

func TestNewLauncher(t *testing.T) {
	opts := ExecOptions{Target: Target{Profile: "p", Cluster: "c"}, TaskId: "t"}
	base := `aws ecs execute-command --profile p --cluster c --task t --interactive --command "/bin/sh"`

	tests := []struct {
		name         string
		goos         string
		mode         LaunchMode
		terminal     string
		wantOutput   string
		wantAttached string
	}{
		{"windows uses start", "windows", LaunchWindow, "", "start " + base, ""},
		{"linux uses xterm", "linux", LaunchWindow, "", "xterm -e " + base, ""},
		{"custom terminal", "darwin", LaunchWindow, " gnome-terminal -- ", "gnome-terminal -- " + base, ""},
		{"inline on linux", "linux", LaunchInline, "", "", base},
		{"inline on windows", "windows", LaunchInline, "", "", base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newMockRunner()
			launcher := NewLauncher(tt.goos, tt.mode, runner, tt.terminal)

			command, err := launcher.Launch(context.Background(), opts)
			require.NoError(t, err)

			if tt.wantOutput != "" {
				assert.Equal(t, tt.wantOutput, command)
				assert.Equal(t, []string{tt.wantOutput}, runner.Commands)
				assert.Empty(t, runner.Attached)
			} else {
				assert.Equal(t, tt.wantAttached, command)
				assert.Equal(t, []string{tt.wantAttached}, runner.Attached)
				assert.Empty(t, runner.Commands)
			}
		})
	}
}

func TestInlineLauncherError(t *testing.T) {
	runner := newMockRunner()
	runner.AttachErr = errors.New("session-manager-plugin not found")

	launcher := NewLauncher("linux", LaunchInline, runner, "")
	_, err := launcher.Launch(context.Background(), ExecOptions{TaskId: "t"})
	assert.EqualError(t, err, "session-manager-plugin not found")
}
