package configApply

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"github.com/t-kuni/kagami-config/domain/repository/file"
	"github.com/t-kuni/kagami-config/domain/system/ksuid"
)

type ConfigApplyService struct {
	fileRepository file.Repository
	ksuidGenerator ksuid.IKsuid
}

// ApplyResult は書き込み結果です。Diff は既存ファイルを置き換えた場合のみ設定されます。
type ApplyResult struct {
	Path       string
	Changed    bool
	BackupPath string
	Diff       string
}

func NewConfigApplyService(fileRepository file.Repository, ksuidGenerator ksuid.IKsuid) *ConfigApplyService {
	return &ConfigApplyService{
		fileRepository: fileRepository,
		ksuidGenerator: ksuidGenerator,
	}
}

// Apply writes example.Content to example.Filename.
// An existing file with different content is copied to <path>.<ksuid>.bak first.
func (s *ConfigApplyService) Apply(example configExample.ConfigExample) (ApplyResult, error) {
	path, err := ExpandPath(example.Filename)
	if err != nil {
		return ApplyResult{}, err
	}

	result := ApplyResult{Path: path}

	if s.fileRepository.Exists(path) {
		oldContent, err := s.fileRepository.Read(path)
		if err != nil {
			return ApplyResult{}, eris.Wrapf(err, "failed to read file: %s", path)
		}

		if string(oldContent) == example.Content {
			return result, nil
		}

		result.BackupPath = path + "." + s.ksuidGenerator.New() + ".bak"
		err = s.fileRepository.Write(result.BackupPath, oldContent)
		if err != nil {
			return ApplyResult{}, eris.Wrapf(err, "failed to write backup: %s", result.BackupPath)
		}

		result.Diff = makeDiff(string(oldContent), example.Content)
	}

	err = s.fileRepository.Write(path, []byte(example.Content))
	if err != nil {
		return ApplyResult{}, eris.Wrapf(err, "failed to write file: %s", path)
	}
	result.Changed = true

	return result, nil
}

// ExpandPath resolves a leading $HOME or ~ and any other environment references.
func ExpandPath(name string) (string, error) {
	for _, prefix := range []string{"$HOME", "${HOME}", "~"} {
		if name == prefix || strings.HasPrefix(name, prefix+"/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", eris.Wrap(err, "failed to resolve home directory")
			}
			name = home + strings.TrimPrefix(name, prefix)
			break
		}
	}

	return filepath.FromSlash(os.ExpandEnv(name)), nil
}

func makeDiff(oldContent, newContent string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
