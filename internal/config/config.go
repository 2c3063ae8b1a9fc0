// Package config はプロファイルごとの設定（クラスター名など）を永続化する
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultProfile はプロファイル未指定時に使用するプロファイル名
	DefaultProfile = "default"

	// DefaultCluster はdefaultプロファイルにクラスター設定がない場合のクラスター名
	DefaultCluster = "default"

	// FileName は設定ファイル名
	FileName = ".ecsh.yaml"

	// EnvConfigPath は設定ファイルのパスを上書きする環境変数
	EnvConfigPath = "ECSH_CONFIG"

	// viperはマップのキーを小文字に変換するため、プロファイル名は
	// profiles配下のリスト要素のnameとして保存する
	//
	//	profiles:
	//	  - name: Prod
	//	    cluster: prod-cluster
	keyProfiles = "profiles"
	keyName     = "name"
)

// プロファイルごとに保存する設定キー
const (
	KeyCluster  = "cluster"
	KeyShell    = "shell"
	KeyTerminal = "terminal"
)

// ErrProfileNotFound はプロファイルに対応するクラスター設定が存在しないことを表す
var ErrProfileNotFound = errors.New("profile not found")

// Store はviperで読み書きする設定ファイル
type Store struct {
	v        *viper.Viper
	path     string
	loaded   bool
	profiles []map[string]string
}

// DefaultPath は設定ファイルのパスを返す
// ECSH_CONFIGが設定されていればそれを優先する
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Open は設定ファイルを読み込む
// ファイルが存在しない場合は空の設定として扱う
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	s := &Store{v: v, path: path}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := v.UnmarshalKey(keyProfiles, &s.profiles); err != nil {
		return nil, fmt.Errorf("invalid '%s' in config file %s: %w", keyProfiles, path, err)
	}
	s.loaded = true

	return s, nil
}

// Path は設定ファイルのパスを返す
func (s *Store) Path() string {
	return s.path
}

// Loaded は設定ファイルが読み込まれたかを返す
func (s *Store) Loaded() bool {
	return s.loaded
}

// find はプロファイル名が完全一致する要素の位置を返す
func (s *Store) find(profile string) int {
	for i, entry := range s.profiles {
		if entry[keyName] == profile {
			return i
		}
	}
	return -1
}

// Get はプロファイルの設定値を返す
// プロファイル名は大文字小文字を区別する
func (s *Store) Get(profile, name string) string {
	if i := s.find(profile); i >= 0 {
		return s.profiles[i][name]
	}
	return ""
}

// Load はプロファイルに紐づくクラスター名を返す
func (s *Store) Load(profile string) (string, bool) {
	cluster := s.Get(profile, KeyCluster)
	return cluster, cluster != ""
}

// Save はプロファイルとクラスター名の組を保存する
func (s *Store) Save(profile, cluster string) error {
	return s.Set(profile, KeyCluster, cluster)
}

// Set はプロファイルの設定値を保存する
func (s *Store) Set(profile, name, value string) error {
	if name == keyName {
		return fmt.Errorf("'%s' is reserved for the profile name", keyName)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	i := s.find(profile)
	if i < 0 {
		s.profiles = append(s.profiles, map[string]string{keyName: profile})
		i = len(s.profiles) - 1
	}
	s.profiles[i][name] = value

	s.v.Set(keyProfiles, s.profiles)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}
	s.loaded = true

	return nil
}

// ResolveCluster はプロファイルのクラスター名を決定する
// defaultプロファイルは設定がなければDefaultClusterを使い、
// それ以外のプロファイルは設定がなければErrProfileNotFoundを返す
func ResolveCluster(s *Store, profile string) (string, error) {
	if cluster, ok := s.Load(profile); ok {
		return cluster, nil
	}
	if profile == DefaultProfile {
		return DefaultCluster, nil
	}
	return "", fmt.Errorf("%w: '%s' (run with --configure to add it to %s)", ErrProfileNotFound, profile, s.path)
}
