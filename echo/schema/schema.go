package schema

import (
	_ "embed"
	"errors"

	"github.com/xeipuuv/gojsonschema"
)

type SchemaType int

const (
	SchemaTypeEcho SchemaType = iota
	SchemaTypeError
)

func (t SchemaType) String() string {
	switch t {
	case SchemaTypeEcho:
		return "echo"
	case SchemaTypeError:
		return "error"
	default:
		return "unknown"
	}
}

var ErrSchemaNotFound = errors.New("schema not found")

type Schema struct {
	schemas map[SchemaType]*gojsonschema.Schema
}

//go:embed echo.json
var echoSchema []byte

//go:embed error.json
var errorSchema []byte

// New compiles the embedded response schemas.
func New() (*Schema, error) {
	echo, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(echoSchema))
	if err != nil {
		return nil, err
	}

	errSchema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(errorSchema))
	if err != nil {
		return nil, err
	}

	return &Schema{
		schemas: map[SchemaType]*gojsonschema.Schema{
			SchemaTypeEcho:  echo,
			SchemaTypeError: errSchema,
		},
	}, nil
}

func (s *Schema) Get(schemaType SchemaType) (*gojsonschema.Schema, error) {
	schema, ok := s.schemas[schemaType]
	if !ok {
		return nil, ErrSchemaNotFound
	}

	return schema, nil
}

// Validate validates the encoded document against the schema of the given type.
func (s *Schema) Validate(schemaType SchemaType, data []byte) (*gojsonschema.Result, error) {
	schema, err := s.Get(schemaType)
	if err != nil {
		return nil, err
	}

	return schema.Validate(gojsonschema.NewBytesLoader(data))
}
