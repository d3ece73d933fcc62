package echo

// DefaultMaxBodySize is the largest request body accepted, in bytes.
const DefaultMaxBodySize int64 = 4_718_592

type Config struct {
	// MaxBodySize is the maximum request body size in bytes. Larger
	// bodies fail to parse.
	MaxBodySize int64 `conf:"max_body_size"`

	// ValidateResponse checks every payload against its JSON schema
	// and logs mismatches.
	ValidateResponse bool `conf:"validate_response"`
}
