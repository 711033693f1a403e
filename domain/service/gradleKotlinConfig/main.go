package gradleKotlinConfig

import (
	_ "embed"

	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"github.com/t-kuni/kagami-config/domain/service/configTemplate"
)

//go:embed init.gradle.kts.tmpl
var initTmpl string

var tmpl = configTemplate.Parse("init.gradle.kts", initTmpl)

const (
	Title    = "Gradle Configuration (Kotlin DSL)"
	Filename = "$HOME/.gradle/init.gradle.kts"
)

type initParam struct {
	Private      bool
	Single       bool
	Repositories string
	Alternative  string
}

// GradleKotlinConfigGenerator は Kotlin DSL の init.gradle.kts を生成します。
type GradleKotlinConfigGenerator struct {
}

func NewGradleKotlinConfigGenerator() *GradleKotlinConfigGenerator {
	return &GradleKotlinConfigGenerator{}
}

// Generate renders init.gradle.kts. The HttpHeader imports are only emitted
// when the repositories are private.
func (g *GradleKotlinConfigGenerator) Generate(params configExample.ConfigParams) (configExample.ConfigExample, error) {
	fragments := configTemplate.Fragments(params)

	repositories, err := configTemplate.RenderEach(tmpl, "repository", fragments)
	if err != nil {
		return configExample.ConfigExample{}, err
	}

	param := initParam{
		Private:      params.IsPrivate,
		Single:       len(fragments) == 1,
		Repositories: repositories,
	}

	if param.Single {
		alternative, err := configTemplate.Render(tmpl, "alternative", fragments[0])
		if err != nil {
			return configExample.ConfigExample{}, err
		}
		param.Alternative = configTemplate.CommentLines(alternative, "// ")
	}

	content, err := configTemplate.Render(tmpl, "init", param)
	if err != nil {
		return configExample.ConfigExample{}, err
	}

	return configExample.ConfigExample{
		Title:    Title,
		Content:  content,
		Filename: Filename,
	}, nil
}
