// Package scaffold materializes a project manifest on disk. It creates the
// project root, directories and empty files, tolerating entries that already
// exist, and seeds well-known files (README.md, LICENSE, CHANGELOG.md) with
// generated headers plus their boilerplate body.
package scaffold
