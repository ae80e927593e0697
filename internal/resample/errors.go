package resample

import "fmt"

// ConfigError reports an unparseable or unrecognized resolution. It is
// raised before any bucketing begins.
type ConfigError struct {
	Resolution string
	Reason     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("resample: bad resolution %q: %s", e.Resolution, e.Reason)
}

// SchemaError reports an input column required by the selected bucketing
// mode that the dataset does not carry.
type SchemaError struct {
	Column string
	Mode   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("resample: missing column %q required for %s bucketing", e.Column, e.Mode)
}
