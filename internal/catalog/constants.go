package catalog

// ConfigFileName is the default resource catalog file name
const ConfigFileName = "resources.json"

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read resource catalog: %w"
	ErrMsgParseConfigFailed    = "failed to parse resource catalog: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil              = "config is nil"
	ErrMsgNoResourcesDefined     = "no resources defined"
	ErrFmtDuplicateResource      = "%w: duplicate resource id '%s'"
	ErrFmtDuplicateInstance      = "%w: duplicate instance id '%s'"
	ErrFmtUnknownResource        = "%w: instance '%s' references unknown resource '%s'"
	ErrFmtNotHarvestable         = "%w: instance '%s' references non-harvestable resource '%s'"
	ErrFmtInvalidMetadata        = "%w: resource '%s': %v"
	ErrFmtInvalidCell            = "%w: instance '%s': %v"
	ErrFmtDeadlineConflict       = "%w: instance '%s' sets both reset_deadline and reset_in"
	ErrFmtMissingDeadline        = "%w: instance '%s' needs reset_deadline or reset_in"
	ErrFmtInvalidDeadline        = "%w: instance '%s' reset_deadline: %v"
	ErrFmtInvalidResetIn         = "%w: instance '%s' reset_in: %v"
)

// Database operation error messages
const (
	ErrMsgUpsertResourceFailed = "failed to upsert resource '%s': %w"
	ErrMsgUpsertInstanceFailed = "failed to upsert instance '%s': %w"
)

// Log messages
const (
	LogMsgSyncCompleted = "Resource catalog synced"
)
