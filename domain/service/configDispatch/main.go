package configDispatch

import (
	"fmt"

	"github.com/t-kuni/kagami-config/domain/model/buildTool"
	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"github.com/t-kuni/kagami-config/domain/service/gradleGroovyConfig"
	"github.com/t-kuni/kagami-config/domain/service/gradleKotlinConfig"
	"github.com/t-kuni/kagami-config/domain/service/mavenConfig"
)

// UnknownBuildToolError is returned for a tag outside buildTool.All().
// Callers should treat it as a programming error.
type UnknownBuildToolError struct {
	Tool buildTool.BuildTool
}

func (e *UnknownBuildToolError) Error() string {
	return fmt.Sprintf("unknown build tool: %s", string(e.Tool))
}

type ConfigDispatchService struct {
	maven        *mavenConfig.MavenConfigGenerator
	gradleGroovy *gradleGroovyConfig.GradleGroovyConfigGenerator
	gradleKotlin *gradleKotlinConfig.GradleKotlinConfigGenerator
}

func NewConfigDispatchService(
	maven *mavenConfig.MavenConfigGenerator,
	gradleGroovy *gradleGroovyConfig.GradleGroovyConfigGenerator,
	gradleKotlin *gradleKotlinConfig.GradleKotlinConfigGenerator,
) *ConfigDispatchService {
	return &ConfigDispatchService{
		maven:        maven,
		gradleGroovy: gradleGroovy,
		gradleKotlin: gradleKotlin,
	}
}

// Generate delegates to the generator of tool.
func (s *ConfigDispatchService) Generate(tool buildTool.BuildTool, params configExample.ConfigParams) (configExample.ConfigExample, error) {
	switch tool {
	case buildTool.Maven:
		return s.maven.Generate(params)
	case buildTool.GradleGroovy:
		return s.gradleGroovy.Generate(params)
	case buildTool.GradleKotlin:
		return s.gradleKotlin.Generate(params)
	default:
		return configExample.ConfigExample{}, &UnknownBuildToolError{Tool: tool}
	}
}

// Describe returns the title and filename tool would produce, without content.
func (s *ConfigDispatchService) Describe(tool buildTool.BuildTool) (configExample.ConfigExample, error) {
	switch tool {
	case buildTool.Maven:
		return configExample.ConfigExample{Title: mavenConfig.Title, Filename: mavenConfig.Filename}, nil
	case buildTool.GradleGroovy:
		return configExample.ConfigExample{Title: gradleGroovyConfig.Title, Filename: gradleGroovyConfig.Filename}, nil
	case buildTool.GradleKotlin:
		return configExample.ConfigExample{Title: gradleKotlinConfig.Title, Filename: gradleKotlinConfig.Filename}, nil
	default:
		return configExample.ConfigExample{}, &UnknownBuildToolError{Tool: tool}
	}
}

// GenerateAll generates an example per tool in order and stops at the first error.
func (s *ConfigDispatchService) GenerateAll(tools []buildTool.BuildTool, params configExample.ConfigParams) ([]configExample.ConfigExample, error) {
	examples := make([]configExample.ConfigExample, 0, len(tools))
	for _, tool := range tools {
		example, err := s.Generate(tool, params)
		if err != nil {
			return nil, err
		}
		examples = append(examples, example)
	}

	return examples, nil
}
