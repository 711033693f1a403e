package configExample

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// ConfigParams は設定例生成の入力です。
type ConfigParams struct {
	RepositoryIDs []string
	Token         string
	BaseURL       string
	IsPrivate     bool
}

// ConfigExample は生成された設定例です。Filename は表示用の保存先パスです。
type ConfigExample struct {
	Title    string
	Content  string
	Filename string
}

// DefaultBaseURL is the address of a Kagami server started locally with default settings.
const DefaultBaseURL = "http://localhost:8080"

var repositoryIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+([._-][A-Za-z0-9]+)*$`)

// トークンはXMLとGroovy/Kotlinの文字列リテラルにそのまま埋め込まれる
const forbiddenTokenChars = "\"\\$<>&' \t\r\n"

// NewConfigParams copies repositoryIDs and strips trailing slashes from baseURL.
func NewConfigParams(repositoryIDs []string, token, baseURL string, isPrivate bool) ConfigParams {
	ids := make([]string, len(repositoryIDs))
	copy(ids, repositoryIDs)

	return ConfigParams{
		RepositoryIDs: ids,
		Token:         token,
		BaseURL:       strings.TrimRight(baseURL, "/"),
		IsPrivate:     isPrivate,
	}
}

// RepositoryURL returns the artifact endpoint of the proxy for id.
func (p ConfigParams) RepositoryURL(id string) string {
	return p.BaseURL + "/artifacts/" + id
}

// IsInsecure reports whether BaseURL uses plain http.
func (p ConfigParams) IsInsecure() bool {
	return strings.HasPrefix(strings.ToLower(p.BaseURL), "http://")
}

// Validate checks the parameters before they reach a generator.
// Generators themselves accept any input.
func (p ConfigParams) Validate() error {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return eris.Wrapf(err, "invalid base url: %s", p.BaseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return eris.Errorf("base url must be an absolute http(s) url: %s", p.BaseURL)
	}

	if len(p.RepositoryIDs) == 0 {
		return eris.New("at least one repository id is required")
	}

	seen := make(map[string]struct{}, len(p.RepositoryIDs))
	for _, id := range p.RepositoryIDs {
		if !repositoryIDPattern.MatchString(id) {
			return eris.Errorf("invalid repository id: %q", id)
		}
		if _, ok := seen[id]; ok {
			return eris.Errorf("duplicate repository id: %s", id)
		}
		seen[id] = struct{}{}
	}

	if strings.ContainsAny(p.Token, forbiddenTokenChars) {
		return eris.New("token contains characters that cannot be embedded in build configuration")
	}

	return nil
}
