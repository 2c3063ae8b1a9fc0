package ecs

import (
	"context"
	"errors"
	"log/slog"

	"ecsh/internal/cli"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/smithy-go"
)

// Lister はサービスとタスクの識別子（ARN）を一覧する
// 取得に失敗した場合は空の一覧を返す
type Lister interface {
	ListServices(ctx context.Context, target Target) []string
	ListTasks(ctx context.Context, target Target, serviceName string) []string
}

// ListServicesCommand はサービス一覧を取得するaws CLIコマンドを組み立てる
func ListServicesCommand(goos string, target Target) string {
	args := []string{
		"ecs", "list-services",
		"--output", "text",
		"--profile", target.Profile,
		"--cluster", target.Cluster,
	}
	return cli.AwsCommand(goos, withRegion(args, target.Region)...)
}

// ListTasksCommand はタスク一覧を取得するaws CLIコマンドを組み立てる
func ListTasksCommand(goos string, target Target, serviceName string) string {
	args := []string{
		"ecs", "list-tasks",
		"--output", "text",
		"--profile", target.Profile,
		"--cluster", target.Cluster,
		"--service-name", serviceName,
	}
	return cli.AwsCommand(goos, withRegion(args, target.Region)...)
}

func withRegion(args []string, region string) []string {
	if region == "" {
		return args
	}
	return append(args, "--region", region)
}

// CLILister はaws CLIを実行して一覧を取得する
type CLILister struct {
	goos   string
	runner cli.Runner
}

// NewCLILister はgoosのシェル向けにコマンドを組み立てるCLIListerを作成する
func NewCLILister(goos string, runner cli.Runner) *CLILister {
	return &CLILister{goos: goos, runner: runner}
}

// ListServices はサービスARNの一覧を返す
func (l *CLILister) ListServices(ctx context.Context, target Target) []string {
	return SplitLines(l.runner.Output(ctx, ListServicesCommand(l.goos, target)))
}

// ListTasks はサービスのタスクARNの一覧を返す
func (l *CLILister) ListTasks(ctx context.Context, target Target, serviceName string) []string {
	return SplitLines(l.runner.Output(ctx, ListTasksCommand(l.goos, target, serviceName)))
}

// ListAPI はSDKListerが利用するECS APIの部分集合
type ListAPI interface {
	ecs.ListServicesAPIClient
	ecs.ListTasksAPIClient
}

// SDKLister はaws-sdk-go-v2で一覧を取得する
// プロファイルとリージョンはクライアント作成時に解決済みとする
type SDKLister struct {
	client ListAPI
	logger *slog.Logger
}

// NewSDKLister はSDKListerを作成する
func NewSDKLister(client ListAPI, logger *slog.Logger) *SDKLister {
	return &SDKLister{client: client, logger: logger}
}

// ListServices はサービスARNの一覧を返す
func (l *SDKLister) ListServices(ctx context.Context, target Target) []string {
	var arns []string
	paginator := ecs.NewListServicesPaginator(l.client, &ecs.ListServicesInput{
		Cluster: aws.String(target.Cluster),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			l.logError("list services", target, err)
			return arns
		}
		arns = append(arns, page.ServiceArns...)
	}
	return arns
}

// ListTasks は実行中タスクのARN一覧を返す
func (l *SDKLister) ListTasks(ctx context.Context, target Target, serviceName string) []string {
	var arns []string
	paginator := ecs.NewListTasksPaginator(l.client, &ecs.ListTasksInput{
		Cluster:       aws.String(target.Cluster),
		ServiceName:   aws.String(serviceName),
		DesiredStatus: types.DesiredStatusRunning,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			l.logError("list tasks", target, err)
			return arns
		}
		arns = append(arns, page.TaskArns...)
	}
	return arns
}

// logError はエラーを記録する（呼び出し側には空の結果として見える）
func (l *SDKLister) logError(operation string, target Target, err error) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		l.logger.Warn(operation+" failed",
			"cluster", target.Cluster,
			"code", apiErr.ErrorCode(),
			"message", apiErr.ErrorMessage())
		return
	}
	l.logger.Warn(operation+" failed", "cluster", target.Cluster, "error", err)
}
