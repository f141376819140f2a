package config

import _ "embed"

//go:embed config.example.json
var ExampleConfig []byte

//go:embed slack.manifest.json
var SlackManifest []byte
