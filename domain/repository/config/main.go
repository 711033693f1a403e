package config

// Config は kagami.yml の内容です。トークンはファイルに保存しません。
type Config struct {
	BaseURL      string   `yaml:"base-url"`
	Private      bool     `yaml:"private"`
	Repositories []string `yaml:"repositories"`
	Tools        []string `yaml:"tools,omitempty"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}
