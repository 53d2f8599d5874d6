// Package config loads the three declarative documents baker runs from:
// info.yaml (author and defaults), templates.yaml (boilerplate bodies keyed
// by well-known filename) and structures.yaml (named project layouts). The
// documents live in ~/.baker/ unless BAKER_CONFIG_DIR or --config-dir point
// elsewhere. Info keys can be read and written individually, and the default
// documents can be written out for a fresh install.
package config
