package config

import "gopkg.in/yaml.v3"

var defaults *Config

func init() {
	data := []byte(`version: v1

storage:
  # One of "memory", "file", or "sqlite".
  backend: file
  # Directory for the file backend, database file for sqlite.
  path: "~/.scribe"
  # Key the document is saved under.
  key: editor-content

editor:
  history_limit: 1000
  placeholder: "Write something..."
  show_block_types: false

log:
  enabled: false
  path: ""
  verbose: false
`)

	defaults = &Config{}
	if err := yaml.Unmarshal(data, defaults); err != nil {
		panic(err)
	}
}
