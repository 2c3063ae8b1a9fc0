package cfn

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCfn struct {
	resources []types.StackResource
	err       error
	stackName string
}

func (f *fakeCfn) DescribeStackResources(_ context.Context, in *cloudformation.DescribeStackResourcesInput, _ ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error) {
	f.stackName = aws.ToString(in.StackName)
	if f.err != nil {
		return nil, f.err
	}
	return &cloudformation.DescribeStackResourcesOutput{StackResources: f.resources}, nil
}

func resource(resourceType, physicalID string) types.StackResource {
	return types.StackResource{
		ResourceType:       aws.String(resourceType),
		PhysicalResourceId: aws.String(physicalID),
	}
}

func TestGetClusterFromStack(t *testing.T) {
	tests := []struct {
		name      string
		resources []types.StackResource
		want      string
		wantErr   error
	}{
		{
			name: "cluster resource",
			resources: []types.StackResource{
				resource("AWS::S3::Bucket", "bucket"),
				resource("AWS::ECS::Cluster", "app-cluster"),
			},
			want: "app-cluster",
		},
		{
			name: "cluster from service arn",
			resources: []types.StackResource{
				resource("AWS::ECS::Service", "arn:aws:ecs:us-east-1:123456789012:service/shared-cluster/api"),
			},
			want: "shared-cluster",
		},
		{
			name:      "no ecs resources",
			resources: []types.StackResource{resource("AWS::S3::Bucket", "bucket")},
			wantErr:   ErrClusterNotInStack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCfn{resources: tt.resources}
			got, err := GetClusterFromStack(context.Background(), client, "my-stack")
			assert.Equal(t, "my-stack", client.stackName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStackResourcesErrors(t *testing.T) {
	client := &fakeCfn{err: &smithy.GenericAPIError{Code: "ValidationError", Message: "Stack with id nope does not exist"}}
	_, err := GetStackResources(context.Background(), client, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	cause := errors.New("network down")
	_, err = GetStackResources(context.Background(), &fakeCfn{err: cause}, "s")
	assert.ErrorIs(t, err, cause)
}
