// Package manifest handles the declarative project structures that baker
// scaffolds from. It decodes and validates the structures document and
// flattens a single structure, plus any extra subdirectories requested on
// the command line, into the ordered directory and file lists that the
// scaffold package materializes.
package manifest
