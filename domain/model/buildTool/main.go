package buildTool

import (
	"strings"

	"github.com/rotisserie/eris"
)

// BuildTool は設定例の生成対象となるビルドツールを表す閉じたタグです。
type BuildTool string

const (
	Maven        BuildTool = "maven"
	GradleGroovy BuildTool = "gradleGroovy"
	GradleKotlin BuildTool = "gradleKotlin"
)

var aliases = map[string]BuildTool{
	"maven":         Maven,
	"mvn":           Maven,
	"gradlegroovy":  GradleGroovy,
	"gradle-groovy": GradleGroovy,
	"groovy":        GradleGroovy,
	"gradlekotlin":  GradleKotlin,
	"gradle-kotlin": GradleKotlin,
	"kotlin":        GradleKotlin,
	"kts":           GradleKotlin,
}

// All returns every supported tool in display order.
func All() []BuildTool {
	return []BuildTool{Maven, GradleGroovy, GradleKotlin}
}

// Parse maps user input to a BuildTool. Matching is case-insensitive.
func Parse(name string) (BuildTool, error) {
	tool, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", eris.Errorf("unknown build tool: %s", name)
	}
	return tool, nil
}

func (t BuildTool) String() string {
	return string(t)
}
