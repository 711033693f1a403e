package gradleGroovyConfig

import (
	_ "embed"

	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"github.com/t-kuni/kagami-config/domain/service/configTemplate"
)

//go:embed init.gradle.tmpl
var initTmpl string

var tmpl = configTemplate.Parse("init.gradle", initTmpl)

const (
	Title    = "Gradle Configuration (Groovy DSL)"
	Filename = "$HOME/.gradle/init.gradle"
)

type initParam struct {
	Single       bool
	Repositories string
	Alternative  string
}

// GradleGroovyConfigGenerator は Groovy DSL の init.gradle を生成します。
type GradleGroovyConfigGenerator struct {
}

func NewGradleGroovyConfigGenerator() *GradleGroovyConfigGenerator {
	return &GradleGroovyConfigGenerator{}
}

func (g *GradleGroovyConfigGenerator) Generate(params configExample.ConfigParams) (configExample.ConfigExample, error) {
	fragments := configTemplate.Fragments(params)

	repositories, err := configTemplate.RenderEach(tmpl, "repository", fragments)
	if err != nil {
		return configExample.ConfigExample{}, err
	}

	param := initParam{
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
