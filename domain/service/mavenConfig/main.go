package mavenConfig

import (
	_ "embed"

	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"github.com/t-kuni/kagami-config/domain/service/configTemplate"
)

//go:embed settings.xml.tmpl
var settingsTmpl string

var tmpl = configTemplate.Parse("settings.xml", settingsTmpl)

const (
	Title    = "Maven Configuration"
	Filename = "$HOME/.m2/settings.xml"

	multipleProfileID = "kagami-multiple"
)

type settingsParam struct {
	Private            bool
	ProfileID          string
	Servers            string
	Repositories       string
	PluginRepositories string
	Alternatives       string
}

// MavenConfigGenerator は Maven の settings.xml を生成します。
type MavenConfigGenerator struct {
}

func NewMavenConfigGenerator() *MavenConfigGenerator {
	return &MavenConfigGenerator{}
}

// Generate renders settings.xml for params.
//
// A single repository gets its own profile plus commented mirror and pom.xml
// alternatives. Several repositories share the kagami-multiple profile and only
// get a mirror note pointing at the first one, since a mirror has exactly one URL.
func (g *MavenConfigGenerator) Generate(params configExample.ConfigParams) (configExample.ConfigExample, error) {
	fragments := configTemplate.Fragments(params)

	var primary configTemplate.Fragment
	if len(fragments) > 0 {
		primary = fragments[0]
	}

	param := settingsParam{
		Private:   params.IsPrivate,
		ProfileID: multipleProfileID,
	}

	var err error
	if param.Private {
		param.Servers, err = configTemplate.RenderEach(tmpl, "server", fragments)
		if err != nil {
			return configExample.ConfigExample{}, err
		}
	}

	param.Repositories, err = configTemplate.RenderEach(tmpl, "repository", fragments)
	if err != nil {
		return configExample.ConfigExample{}, err
	}

	param.PluginRepositories, err = configTemplate.RenderEach(tmpl, "pluginRepository", fragments)
	if err != nil {
		return configExample.ConfigExample{}, err
	}

	alternatives := "multipleAlternatives"
	if len(fragments) == 1 {
		param.ProfileID = "kagami-" + primary.ID
		alternatives = "singleAlternatives"
	}

	param.Alternatives, err = configTemplate.Render(tmpl, alternatives, primary)
	if err != nil {
		return configExample.ConfigExample{}, err
	}

	content, err := configTemplate.Render(tmpl, "settings", param)
	if err != nil {
		return configExample.ConfigExample{}, err
	}

	return configExample.ConfigExample{
		Title:    Title,
		Content:  content,
		Filename: Filename,
	}, nil
}
