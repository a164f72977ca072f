// Package config loads and validates widget configuration from CUE files.
//
// Config files are unified against the embedded #Config schema, so field
// domains (mode names, step >= 1) are enforced with CUE positions before
// any Go-side validation runs. A missing file yields the defaults.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaCUE string

// Error code constants for config loading.
const (
	ErrCodeGeneric      = "C001" // Generic/unknown error
	ErrCodeNotFound     = "C002" // Config path not accessible
	ErrCodeParseFailed  = "C003" // CUE parse failed
	ErrCodeSchemaFailed = "C004" // Schema unification/validation failed
	ErrCodeInvalid      = "C005" // Semantic validation failed
)

// LoadError is a config loading failure with an optional CUE position.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Config holds the widget's construction parameters.
type Config struct {
	InitialValue int64  `json:"initialValue"`
	MinValue     int64  `json:"minValue"`
	MaxValue     int64  `json:"maxValue"`
	Step         int64  `json:"step"`
	ResetToZero  bool   `json:"resetToZero"`
	Persist      bool   `json:"persist"`
	DefaultMode  string `json:"defaultMode"`
}

// Default returns the configuration used when no file is present:
// bounds [0, max int64], step 1, reset to initial, persistence on,
// system theme.
func Default() Config {
	return Config{
		InitialValue: 0,
		MinValue:     0,
		MaxValue:     math.MaxInt64,
		Step:         1,
		ResetToZero:  false,
		Persist:      true,
		DefaultMode:  "system",
	}
}

// Load reads and validates the CUE config file at path. A missing file is
// not an error: the defaults are returned. All other failures are
// reported as LoadErrors.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading config: %v", err)}
	}
	return Parse(path, data)
}

// Parse validates CUE config bytes against the embedded schema and
// decodes them. filename is used for error positions only.
func Parse(filename string, data []byte) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling embedded schema: %v", err)}
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Config{}, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing config: %v", err), Pos: value.Pos()}
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Config{}, &LoadError{Code: ErrCodeSchemaFailed, Message: fmt.Sprintf("validating config: %v", err)}
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, &LoadError{Code: ErrCodeSchemaFailed, Message: fmt.Sprintf("decoding config: %v", err)}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the cross-field constraints the schema cannot express.
func (c Config) Validate() error {
	if c.MinValue > c.MaxValue {
		return &LoadError{
			Code:    ErrCodeInvalid,
			Message: fmt.Sprintf("minValue %d exceeds maxValue %d", c.MinValue, c.MaxValue),
		}
	}
	if c.InitialValue < c.MinValue || c.InitialValue > c.MaxValue {
		return &LoadError{
			Code:    ErrCodeInvalid,
			Message: fmt.Sprintf("initialValue %d outside bounds [%d, %d]", c.InitialValue, c.MinValue, c.MaxValue),
		}
	}
	if c.Step < 1 {
		return &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("step %d must be >= 1", c.Step)}
	}
	switch c.DefaultMode {
	case "light", "dark", "system":
	default:
		return &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("defaultMode %q must be light, dark, or system", c.DefaultMode)}
	}
	return nil
}
