package configTemplate

import (
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fragment はリポジトリ1件分のテンプレート入力です。
type Fragment struct {
	ID       string
	URL      string
	Token    string
	Private  bool
	Insecure bool
}

// Fragments builds one Fragment per repository id, preserving order.
func Fragments(params configExample.ConfigParams) []Fragment {
	fragments := make([]Fragment, 0, len(params.RepositoryIDs))
	for _, id := range params.RepositoryIDs {
		fragments = append(fragments, Fragment{
			ID:       id,
			URL:      params.RepositoryURL(id),
			Token:    params.Token,
			Private:  params.IsPrivate,
			Insecure: params.IsInsecure(),
		})
	}
	return fragments
}

// Parse parses an embedded template set. It panics on error, like template.Must.
func Parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"capitalize": Capitalize,
	}).Parse(text))
}

// Render executes the named template.
func Render(tmpl *template.Template, name string, data any) (string, error) {
	var output strings.Builder
	err := tmpl.ExecuteTemplate(&output, name, data)
	if err != nil {
		return "", eris.Wrapf(err, "failed to render template: %s", name)
	}

	return output.String(), nil
}

// RenderEach renders the named template once per fragment and joins the results with a newline.
func RenderEach(tmpl *template.Template, name string, fragments []Fragment) (string, error) {
	rendered := make([]string, 0, len(fragments))
	for _, f := range fragments {
		s, err := Render(tmpl, name, f)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s)
	}

	return strings.Join(rendered, "\n"), nil
}

// CommentLines prefixes every line of text with prefix.
func CommentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(prefix+line, " ")
	}
	return strings.Join(lines, "\n")
}

// Capitalize upper-cases the first letter and keeps the rest as is.
func Capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	// Caser は状態を持つのでゴルーチン間で共有しない
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
