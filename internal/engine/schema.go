package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/parser"
	"github.com/raql-dev/raql/pkg/schema"
	"github.com/raql-dev/raql/pkg/syntax"
	"github.com/raql-dev/raql/pkg/tree"
)

// LoadSchemaFile loads an initial schema from a file. Two formats are
// supported: a YAML mapping from relation name to attribute list
// (.yaml/.yml), and definition statements in the relational algebra
// notation itself (`movies(title, year);`), one or more per file.
func LoadSchemaFile(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLSchema(data)
	default:
		return parseDefinitionSchema(string(data))
	}
}

func parseYAMLSchema(data []byte) (*schema.Schema, error) {
	var relations map[string][]string
	if err := yaml.Unmarshal(data, &relations); err != nil {
		return nil, fmt.Errorf("failed to parse schema yaml: %w", err)
	}
	return schema.FromMap(relations), nil
}

// parseDefinitionSchema parses a schema written as definition
// statements. Any other statement kind in the file is rejected.
func parseDefinitionSchema(input string) (*schema.Schema, error) {
	cfg, _ := syntax.Get("dependency")
	stmts, err := parser.Parse(input, cfg)
	if err != nil {
		return nil, err
	}

	s := schema.New()
	builder := tree.NewBuilder(s)
	for _, stmt := range stmts {
		if _, ok := stmt.(*ast.DefinitionStmt); !ok {
			return nil, fmt.Errorf("schema files may only contain definition statements, found %T", stmt)
		}
		if _, err := builder.BuildStatement(stmt); err != nil {
			return nil, err
		}
	}
	return s, nil
}
