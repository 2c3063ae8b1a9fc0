package cfn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
)

const (
	ecsClusterType = "AWS::ECS::Cluster"
	ecsServiceType = "AWS::ECS::Service"
)

// ErrClusterNotInStack はスタックからECSクラスターを検出できないことを表す
var ErrClusterNotInStack = errors.New("no ECS cluster found in stack")

// StackResourcesAPI はスタックリソース取得に使うCloudFormation API
type StackResourcesAPI interface {
	DescribeStackResources(ctx context.Context, params *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error)
}

// GetStackResources はCloudFormationスタックのリソース一覧を取得します
func GetStackResources(ctx context.Context, cfnClient StackResourcesAPI, stackName string) ([]types.StackResource, error) {
	resp, err := cfnClient.DescribeStackResources(ctx, &cloudformation.DescribeStackResourcesInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationError" {
			return nil, fmt.Errorf("stack '%s' does not exist: %s", stackName, apiErr.ErrorMessage())
		}
		return nil, fmt.Errorf("failed to describe resources of stack '%s': %w", stackName, err)
	}

	return resp.StackResources, nil
}

// GetClusterFromStack はCloudFormationスタックからECSクラスター名を取得します
// クラスターリソースがない場合はサービスのARNからクラスター名を取り出します
func GetClusterFromStack(ctx context.Context, cfnClient StackResourcesAPI, stackName string) (string, error) {
	resources, err := GetStackResources(ctx, cfnClient, stackName)
	if err != nil {
		return "", err
	}

	for _, resource := range resources {
		if aws.ToString(resource.ResourceType) == ecsClusterType && aws.ToString(resource.PhysicalResourceId) != "" {
			return aws.ToString(resource.PhysicalResourceId), nil
		}
	}

	// サービスARNの形式: arn:aws:ecs:REGION:ACCOUNT:service/CLUSTER/SERVICE_NAME
	for _, resource := range resources {
		if aws.ToString(resource.ResourceType) != ecsServiceType {
			continue
		}
		parts := strings.Split(aws.ToString(resource.PhysicalResourceId), "/")
		if len(parts) >= 3 {
			return parts[len(parts)-2], nil
		}
	}

	return "", fmt.Errorf("%w: '%s'", ErrClusterNotInStack, stackName)
}
