package generateCommand

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/kagami-config/domain/repository/file"
	"github.com/t-kuni/kagami-config/domain/service/configApply"
	"github.com/t-kuni/kagami-config/domain/service/configDispatch"
	"github.com/t-kuni/kagami-config/domain/service/configFindService"
	"github.com/t-kuni/kagami-config/domain/service/gradleGroovyConfig"
	"github.com/t-kuni/kagami-config/domain/service/gradleKotlinConfig"
	"github.com/t-kuni/kagami-config/domain/service/mavenConfig"
	"github.com/t-kuni/kagami-config/domain/system/ksuid"
	configRepo "github.com/t-kuni/kagami-config/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/kagami-config/infrastructure/repository/file"
	"github.com/t-kuni/kagami-config/testUtil"
	"go.uber.org/mock/gomock"
)

func TestGenerateCommand(t *testing.T) {
	callCommand := func(t *testing.T, dir string, ksuidGenerator ksuid.IKsuid, args []string) (string, error) {
		mockCtrl := gomock.NewController(t)
		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Getwd().Return(dir, nil).AnyTimes()

		dispatchSvc := configDispatch.NewConfigDispatchService(
			mavenConfig.NewMavenConfigGenerator(),
			gradleGroovyConfig.NewGradleGroovyConfigGenerator(),
			gradleKotlinConfig.NewGradleKotlinConfigGenerator(),
		)
		applySvc := configApply.NewConfigApplyService(fileRepo.NewFileRepository(), ksuidGenerator)

		cmd := NewGenerateCommand(configFindService.NewConfigFindService(mockFileRepo), configRepo.NewConfigRepository(), dispatchSvc, applySvc)
		rootCmd := &cobra.Command{SilenceUsage: true, SilenceErrors: true}
		rootCmd.AddCommand(cmd.CobraCommand)

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	clearEnv := func(t *testing.T) {
		t.Setenv(EnvBaseURL, "")
		t.Setenv(EnvToken, "")
		t.Setenv(EnvPrivate, "")
	}

	t.Run("引数とフラグから設定例が出力されること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(t, space.Dir, nil, []string{"generate", "central", "-t", "maven", "-u", "https://example.com/"})
		assert.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, "# Maven Configuration ($HOME/.m2/settings.xml)\n"))
		assert.Contains(t, out, "<url>https://example.com/artifacts/central</url>")
		assert.NotContains(t, out, "<servers>")
		assert.NotContains(t, out, "Gradle")
	})

	t.Run("ツール未指定の場合は全ツール分出力されること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(t, space.Dir, nil, []string{"generate", "central", "snapshots"})
		assert.NoError(t, err)

		assert.Contains(t, out, "# Maven Configuration ($HOME/.m2/settings.xml)\n")
		assert.Contains(t, out, "# Gradle Configuration (Groovy DSL) ($HOME/.gradle/init.gradle)\n")
		assert.Contains(t, out, "# Gradle Configuration (Kotlin DSL) ($HOME/.gradle/init.gradle.kts)\n")
		assert.Less(t, strings.Index(out, "# Maven"), strings.Index(out, "# Gradle Configuration (Groovy DSL)"))
		// デフォルトのベースURL
		assert.Contains(t, out, "http://localhost:8080/artifacts/snapshots")
	})

	t.Run("kagami.ymlと環境変数から設定が読み込まれること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kagami.yml", []byte(`
base-url: https://kagami.example.com
private: true
repositories:
  - central
  - snapshots
tools:
  - gradleKotlin
`))
		space.MkDir("sub")
		t.Setenv(EnvToken, "envtok")

		out, err := callCommand(t, filepath.Join(space.Dir, "sub"), nil, []string{"generate"})
		assert.NoError(t, err)

		assert.Contains(t, out, "# Gradle Configuration (Kotlin DSL)")
		assert.NotContains(t, out, "# Maven")
		assert.Equal(t, 2, strings.Count(out, `value = "Bearer envtok"`))
		assert.Contains(t, out, `uri("https://kagami.example.com/artifacts/snapshots")`)
	})

	t.Run("フラグが環境変数とkagami.ymlより優先されること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kagami.yml", []byte(`
base-url: https://file.example.com
private: true
repositories: [central]
`))
		t.Setenv(EnvToken, "envtok")
		t.Setenv(EnvBaseURL, "https://env.example.com")

		out, err := callCommand(t, space.Dir, nil, []string{"generate", "plugins", "-t", "maven", "--token", "flagtok", "-u", "https://flag.example.com"})
		assert.NoError(t, err)
		assert.Contains(t, out, "<value>Bearer flagtok</value>")
		assert.Contains(t, out, "<url>https://flag.example.com/artifacts/plugins</url>")
		assert.NotContains(t, out, "envtok")
		assert.NotContains(t, out, "artifacts/central")

		out, err = callCommand(t, space.Dir, nil, []string{"generate", "-t", "maven", "--private=false"})
		assert.NoError(t, err)
		assert.Contains(t, out, "<url>https://env.example.com/artifacts/central</url>")
		assert.NotContains(t, out, "Bearer")
	})

	t.Run("KAGAMI_PRIVATEが解釈できない場合はエラーになること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		t.Setenv(EnvPrivate, "maybe")

		_, err := callCommand(t, space.Dir, nil, []string{"generate", "central"})
		assert.Error(t, err)
	})

	t.Run("未知のツールはエラーになること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		_, err := callCommand(t, space.Dir, nil, []string{"generate", "central", "-t", "ant"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown build tool")
	})

	t.Run("リポジトリIDがない場合はエラーになること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		_, err := callCommand(t, space.Dir, nil, []string{"generate"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one repository id")
	})

	t.Run("不正なリポジトリIDはエラーになること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		_, err := callCommand(t, space.Dir, nil, []string{"generate", "<central>"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid repository id")
	})

	t.Run("--writeでファイルに書き込まれること", func(t *testing.T) {
		clearEnv(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		t.Setenv("HOME", space.Dir)

		mockCtrl := gomock.NewController(t)
		mockKsuid := ksuid.NewMockIKsuid(mockCtrl)
		mockKsuid.EXPECT().New().Return("backup1")
		mockKsuid.EXPECT().New().Return("backup2")

		args := []string{"generate", "central", "-t", "maven", "-t", "gradleGroovy", "-u", "https://example.com", "-p", "--token", "tok", "-w"}
		out, err := callCommand(t, space.Dir, mockKsuid, args)
		assert.NoError(t, err)
		assert.Contains(t, out, "Wrote Maven Configuration to "+filepath.Join(space.Dir, ".m2", "settings.xml"))

		space.AssertFile(filepath.Join(".m2", "settings.xml"), func(actual []byte) {
			assert.Contains(t, string(actual), "<value>Bearer tok</value>")
		})
		space.AssertFile(filepath.Join(".gradle", "init.gradle"), func(actual []byte) {
			assert.Contains(t, string(actual), `value = "Bearer tok"`)
		})
		space.AssertNotExistPath(filepath.Join(".gradle", "init.gradle.kts"))

		// 同じ内容なら書き換えない
		out, err = callCommand(t, space.Dir, mockKsuid, args)
		assert.NoError(t, err)
		assert.Contains(t, out, filepath.Join(space.Dir, ".m2", "settings.xml")+" is up to date")

		// 内容が変わる場合はバックアップされる
		args[len(args)-2] = "tok2"
		out, err = callCommand(t, space.Dir, mockKsuid, args)
		assert.NoError(t, err)
		assert.Contains(t, out, "Backed up "+filepath.Join(space.Dir, ".m2", "settings.xml"))

		space.AssertFile(filepath.Join(".m2", "settings.xml.backup1.bak"), func(actual []byte) {
			assert.Contains(t, string(actual), "<value>Bearer tok</value>")
		})
		space.AssertFile(filepath.Join(".gradle", "init.gradle.backup2.bak"), func(actual []byte) {
			assert.Contains(t, string(actual), `value = "Bearer tok"`)
		})
		space.AssertFile(filepath.Join(".m2", "settings.xml"), func(actual []byte) {
			assert.Contains(t, string(actual), "<value>Bearer tok2</value>")
		})
	})
}
