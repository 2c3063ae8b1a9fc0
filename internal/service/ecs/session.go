package ecs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"ecsh/internal/prompt"
	"ecsh/internal/service/common"
)

// Chooser は番号による選択を読み取る
type Chooser interface {
	ReadChoice(ctx context.Context, message string, maxValue int) (int, error)
}

// Progress は時間のかかる処理の進捗表示
type Progress interface {
	// Begin は表示を開始し、終了用の関数を返す
	Begin(description string) (done func())
}

type nopProgress struct{}

func (nopProgress) Begin(string) func() { return func() {} }

type state int

const (
	stateSelectService state = iota
	stateSelectTask
	stateLaunch
	stateDone
)

func (s state) String() string {
	switch s {
	case stateSelectService:
		return "SELECT_SERVICE"
	case stateSelectTask:
		return "SELECT_TASK"
	case stateLaunch:
		return "LAUNCH"
	default:
		return "DONE"
	}
}

// Session はサービス選択 → タスク選択 → シェル接続の一連の流れを実行する
type Session struct {
	Lister   Lister
	Chooser  Chooser
	Launcher Launcher
	Progress Progress
	Out      io.Writer
	Logger   *slog.Logger

	// Shell と ContainerName は接続時のexecute-commandに渡す
	Shell         string
	ContainerName string
}

// Run はセッションを開始する
// サービスがない場合はErrNoServices、タスクがない場合はErrNoTasksを返す
func (s *Session) Run(ctx context.Context, opts Options) (*Result, error) {
	match, err := common.NewMatcher(opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("%s invalid filter pattern '%s': %w", common.ErrorIcon, opts.Filter, err)
	}

	progress := s.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	result := &Result{}
	st := stateSelectService

	for st != stateDone {
		s.Logger.Debug("session state", "state", st.String())

		switch st {
		case stateSelectService:
			done := progress.Begin("Listing services")
			services := ExtractResources(s.Lister.ListServices(ctx, opts.Target))
			done()
			if err := interrupted(ctx); err != nil {
				return nil, err
			}

			services = common.Filter(services, match)
			sort.Strings(services)

			if len(services) == 0 {
				return nil, fmt.Errorf("%s %w in cluster '%s'", common.ErrorIcon, ErrNoServices, opts.Cluster)
			}

			common.PrintNumberedList(s.Out, services)
			choice, err := s.Chooser.ReadChoice(ctx, "Select Service", len(services))
			if err != nil {
				return nil, err
			}
			result.Service = services[choice-1]
			fmt.Fprintf(s.Out, common.SelectedFormat+"\n", common.SuccessIcon, "service", result.Service)
			st = stateSelectTask

		case stateSelectTask:
			done := progress.Begin("Listing tasks")
			tasks := ExtractResources(s.Lister.ListTasks(ctx, opts.Target, result.Service))
			done()
			if err := interrupted(ctx); err != nil {
				return nil, err
			}

			common.PrintNumberedList(s.Out, tasks)

			choice := 1
			switch {
			case len(tasks) == 0:
				fmt.Fprintln(s.Out, "No task running, exit.")
				return result, ErrNoTasks
			case len(tasks) > 1:
				choice, err = s.Chooser.ReadChoice(ctx, "Select Task", len(tasks))
				if err != nil {
					return nil, err
				}
			default:
				fmt.Fprintf(s.Out, common.AutoSelectedFormat+"\n", common.SuccessIcon, "task", tasks[0])
			}
			result.Task = tasks[choice-1]
			st = stateLaunch

		case stateLaunch:
			s.printSummary(opts, result)

			command, err := s.Launcher.Launch(ctx, ExecOptions{
				Target:        opts.Target,
				TaskId:        result.Task,
				ContainerName: s.ContainerName,
				Shell:         s.Shell,
			})
			result.Command = command
			if err != nil {
				return result, fmt.Errorf("%s failed to open a shell in task '%s': %w", common.ErrorIcon, result.Task, err)
			}
			st = stateDone
		}
	}

	return result, nil
}

// interrupted は一覧取得中にcontextがキャンセルされた場合にErrInterruptedを返す
// キャンセル後の空の出力はサービスやタスクがないものとして扱わない
func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", prompt.ErrInterrupted, err)
	}
	return nil
}

// printSummary は接続先を表示する
func (s *Session) printSummary(opts Options, result *Result) {
	data := [][]string{
		{"Profile", opts.Profile},
		{"Cluster", opts.Cluster},
		{"Service", result.Service},
		{"Task", result.Task},
	}
	if opts.Region != "" {
		data = append(data, []string{"Region", opts.Region})
	}
	common.PrintTable(s.Out, "", []common.TableColumn{{Header: "TARGET"}, {Header: "VALUE"}}, data)
	fmt.Fprintf(s.Out, common.ConnectingFormat+"\n", common.RocketIcon, result.Task)
}
