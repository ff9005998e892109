// Package config defines the format-agnostic taskfile model for the
// application, along with the Loader interface implemented by each
// on-disk taskfile format.
//
// The `config.Model` is the single source of truth for the `dag` and
// `executor` packages. Concrete Loader implementations, such as for HCL,
// YAML and TOML, are provided in separate packages.
package config
