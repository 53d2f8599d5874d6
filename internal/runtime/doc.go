// Package runtime provisions the language environment of a freshly
// scaffolded project, such as a Python virtual environment, by running the
// toolchain as an external process inside the project root.
package runtime
