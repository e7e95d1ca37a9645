// Package config provides run configuration for pipeline translation.
//
// Options is the opaque options object a TranslationContext is
// constructed from. It is loaded from a config.yml plus .env overrides
// (viper + godotenv) and validated with struct tags:
//
//	opts, err := config.Load("wordcount")
//
// The translation core only references Options; it never mutates them.
package config
