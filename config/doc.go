// Package config holds the endnote command's preferences and loads them
// from YAML files such as
//
//	keyword_separator: "; "
//	format: yaml
//	verbosity: 1
package config
