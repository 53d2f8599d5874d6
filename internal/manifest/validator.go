package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/structures.schema.json
var structuresSchemaBytes []byte

//go:embed schema/templates.schema.json
var templatesSchemaBytes []byte

var (
	structuresSchema = &lazySchema{name: "structures.schema.json", raw: structuresSchemaBytes}
	templatesSchema  = &lazySchema{name: "templates.schema.json", raw: templatesSchemaBytes}
	printer          = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/basic/0", "/advanced/1/src")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// String renders the issue as "path: message".
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// lazySchema compiles an embedded JSON schema on first use.
type lazySchema struct {
	name string
	raw  []byte

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func (l *lazySchema) get() (*jsonschema.Schema, error) {
	l.once.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(l.raw))
		if err != nil {
			l.err = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(l.name, doc); err != nil {
			l.err = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		l.compiled, l.err = c.Compile(l.name)
		if l.err != nil {
			l.err = fmt.Errorf("compiling schema: %w", l.err)
		}
	})
	return l.compiled, l.err
}

// ValidateStructures validates a raw structures document against the
// structures schema. The error return is for YAML or schema compilation
// failures; validation issues are returned in the ValidationResult.
func ValidateStructures(data []byte) (*ValidationResult, error) {
	return validate(structuresSchema, data)
}

// ValidateTemplates validates a raw templates document.
func ValidateTemplates(data []byte) (*ValidationResult, error) {
	return validate(templatesSchema, data)
}

// ValidateStructuresFile reads a file and validates it as a structures document.
func ValidateStructuresFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ValidateStructures(data)
}

func validate(l *lazySchema, data []byte) (*ValidationResult, error) {
	schema, err := l.get()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through encoding/json so the validator sees plain maps
	// rather than YAML-specific types.
	jsonData, err := json.Marshal(nodeValue(&doc))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// nodeValue converts a YAML node into JSON-compatible values. Every
// non-null scalar, including mapping keys, becomes its literal text, which is
// how the parser reads names: "- 2024: [notes.md]" is a directory "2024".
func nodeValue(n *yaml.Node) interface{} {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil
		}
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = nodeValue(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		items := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, nodeValue(c))
		}
		return items
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil
		}
		return n.Value
	default:
		return nil
	}
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
// oneOf branches are walked so the caller sees property-level errors rather
// than just "oneOf failed".
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container errors carry no information of their own.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
