// Package loader probes the filesystem for configuration files by stem,
// trying every supported serialization format in a fixed order.
//
// A stem is a file path without its extension. Load("/etc/app/web.prod")
// probes web.prod.yaml, web.prod.yml, web.prod.json, web.prod.jsonc and
// web.prod.toml in that order and parses the first file that exists. File
// absence is an expected outcome, not an error.
//
// The Decoder interface makes the format set pluggable; pass a custom
// decoder list to NewFileLoader to change formats or their precedence.
package loader
