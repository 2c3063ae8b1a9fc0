package ecs

import (
	"strings"
)

// ExtractArnResource はARNから最後の「/」以降のリソース名を取り出す
// 「/」を含まない場合は行全体を返す。空になる場合はfalseを返す
//
//	arn:aws:ecs:region:account:task/cluster-name/task-id -> task-id
func ExtractArnResource(arn string) (string, bool) {
	arn = strings.TrimSpace(arn)
	resource := strings.TrimSpace(arn[strings.LastIndex(arn, "/")+1:])
	return resource, resource != ""
}

// ExtractResources はコマンド出力の各行からリソース名を取り出す
// 取り出せなかった行は読み飛ばす
func ExtractResources(lines []string) []string {
	resources := make([]string, 0, len(lines))
	for _, line := range lines {
		if resource, ok := ExtractArnResource(line); ok {
			resources = append(resources, resource)
		}
	}
	return resources
}

// SplitLines はコマンド出力を行に分割する
func SplitLines(output string) []string {
	if output == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(output, "\n"), "\n")
}
