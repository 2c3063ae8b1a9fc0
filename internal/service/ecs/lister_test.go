package ecs

import (
	"context"
	"errors"
	"testing"

	"ecsh/internal/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommands(t *testing.T) {
	target := Target{Profile: "dev", Cluster: "c1"}
	assert.Equal(t, "aws ecs list-services --output text --profile dev --cluster c1", ListServicesCommand("linux", target))
	assert.Equal(t, "aws ecs list-tasks --output text --profile dev --cluster c1 --service-name api", ListTasksCommand("linux", target, "api"))

	target.Region = "eu-west-1"
	assert.Equal(t, "aws ecs list-services --output text --profile dev --cluster c1 --region eu-west-1", ListServicesCommand("linux", target))

	target = Target{Profile: "dev", Cluster: "c$(id)"}
	assert.Equal(t, "aws ecs list-services --output text --profile dev --cluster 'c$(id)'", ListServicesCommand("linux", target))
	assert.Equal(t, `aws ecs list-services --output text --profile dev --cluster "c$(id)"`, ListServicesCommand("windows", target))
}

func TestCLILister(t *testing.T) {
	runner := newMockRunner()
	target := Target{Profile: "dev", Cluster: "c1"}
	runner.AddResponse(ListServicesCommand("linux", target), "arn:a:service/c1/b\narn:a:service/c1/a\n")

	lister := NewCLILister("linux", runner)
	assert.Equal(t, []string{"arn:a:service/c1/b", "arn:a:service/c1/a"}, lister.ListServices(context.Background(), target))

	// 出力がない場合（コマンド失敗を含む）は空
	assert.Empty(t, lister.ListTasks(context.Background(), target, "a"))
}

// fakeECS はListAPIのテスト実装
type fakeECS struct {
	servicePages [][]string
	taskPages    [][]string
	err          error

	taskInputs []*ecs.ListTasksInput
}

func (f *fakeECS) ListServices(_ context.Context, in *ecs.ListServicesInput, _ ...func(*ecs.Options)) (*ecs.ListServicesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page, next := pageAt(f.servicePages, in.NextToken)
	return &ecs.ListServicesOutput{ServiceArns: page, NextToken: next}, nil
}

func (f *fakeECS) ListTasks(_ context.Context, in *ecs.ListTasksInput, _ ...func(*ecs.Options)) (*ecs.ListTasksOutput, error) {
	f.taskInputs = append(f.taskInputs, in)
	if f.err != nil {
		return nil, f.err
	}
	page, next := pageAt(f.taskPages, in.NextToken)
	return &ecs.ListTasksOutput{TaskArns: page, NextToken: next}, nil
}

// pageAt はトークン（ページ番号）に対応するページと次のトークンを返す
func pageAt(pages [][]string, token *string) ([]string, *string) {
	index := 0
	if token != nil {
		index = len(*token)
	}
	if index >= len(pages) {
		return nil, nil
	}
	var next *string
	if index+1 < len(pages) {
		s := make([]byte, index+1)
		for i := range s {
			s[i] = 'x'
		}
		next = aws.String(string(s))
	}
	return pages[index], next
}

func TestSDKListerPaginates(t *testing.T) {
	client := &fakeECS{
		servicePages: [][]string{{"arn:a:service/c/a"}, {"arn:a:service/c/b", "arn:a:service/c/c"}},
		taskPages:    [][]string{{"arn:a:task/c/1"}},
	}
	lister := NewSDKLister(client, logging.Discard())
	target := Target{Profile: "dev", Cluster: "c"}

	services := lister.ListServices(context.Background(), target)
	assert.Equal(t, []string{"arn:a:service/c/a", "arn:a:service/c/b", "arn:a:service/c/c"}, services)

	tasks := lister.ListTasks(context.Background(), target, "a")
	assert.Equal(t, []string{"arn:a:task/c/1"}, tasks)

	require.Len(t, client.taskInputs, 1)
	assert.Equal(t, "c", aws.ToString(client.taskInputs[0].Cluster))
	assert.Equal(t, "a", aws.ToString(client.taskInputs[0].ServiceName))
	assert.Equal(t, types.DesiredStatusRunning, client.taskInputs[0].DesiredStatus)
}

func TestSDKListerErrorsLookEmpty(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"api error", &smithy.GenericAPIError{Code: "ClusterNotFoundException", Message: "Cluster not found."}},
		{"plain error", errors.New("no credentials")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := NewSDKLister(&fakeECS{err: tt.err}, logging.Discard())
			assert.Empty(t, lister.ListServices(context.Background(), Target{Cluster: "c"}))
			assert.Empty(t, lister.ListTasks(context.Background(), Target{Cluster: "c"}, "s"))
		})
	}
}
