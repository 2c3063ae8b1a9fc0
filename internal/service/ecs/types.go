package ecs

import (
	"errors"
)

// DefaultShell はexecute-commandで起動するシェルのデフォルト
const DefaultShell = "/bin/sh"

var (
	// ErrNoServices はクラスターにサービスが1つも見つからないことを表す
	ErrNoServices = errors.New("no services found")

	// ErrNoTasks は選択したサービスに実行中のタスクがないことを表す
	// 正常終了として扱う
	ErrNoTasks = errors.New("no task running")
)

// Target は一覧取得の対象（プロファイル・クラスター・リージョン）
type Target struct {
	Profile string
	Cluster string
	Region  string
}

// Options はセッション開始のパラメータを格納する構造体
type Options struct {
	Target

	// Filter はサービス名のフィルタパターン（空なら全件）
	Filter string
}

// ExecOptions はECS execute-commandのパラメータを格納する構造体
type ExecOptions struct {
	Target

	TaskId        string
	ContainerName string
	Shell         string
}

// Result はセッション開始までに決定した内容
type Result struct {
	Service string
	Task    string
	Command string
}
