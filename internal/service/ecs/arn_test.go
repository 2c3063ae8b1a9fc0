package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractArnResource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"service arn", "arn:aws:ecs:ap-northeast-1:123456789012:service/my-cluster/svcA", "svcA", true},
		{"task arn", "arn:aws:ecs:us-east-1:123456789012:task/my-cluster/0123456789abcdef", "0123456789abcdef", true},
		{"text output with prefix", "SERVICEARNS\tarn:aws:ecs:us-east-1:1:service/c/api", "api", true},
		{"single slash", "service/web", "web", true},
		{"no slash returns whole line", "plain-name", "plain-name", true},
		{"trailing slash is blank", "arn:aws:ecs:x:service/", "", false},
		{"empty line", "", "", false},
		{"whitespace only", "  \r", "", false},
		{"carriage return trimmed", "task/c/abc\r", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractArnResource(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractResources(t *testing.T) {
	lines := SplitLines("arn:a:service/c/svcB\n\narn:a:service/c/\narn:a:service/c/svcA\n")
	assert.Equal(t, []string{"svcB", "svcA"}, ExtractResources(lines))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb"))
}
