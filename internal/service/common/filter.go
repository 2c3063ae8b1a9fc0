package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// Matcher はリソース名のフィルタ
type Matcher func(name string) bool

// NewMatcher はパターンからMatcherを作成する
// ワイルドカード（* ? [ {）を含む場合はglob形式でマッチングし、
// 含まない場合は部分一致で判定する。空のパターンはすべてにマッチする
func NewMatcher(pattern string) (Matcher, error) {
	if pattern == "" {
		return func(string) bool { return true }, nil
	}

	if strings.ContainsAny(pattern, "*?[{") {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		return g.Match, nil
	}

	return func(name string) bool {
		return strings.Contains(name, pattern)
	}, nil
}

// Filter はMatcherに一致する要素のみを順序を保って返す
func Filter(items []string, match Matcher) []string {
	if match == nil {
		return items
	}
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if match(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
