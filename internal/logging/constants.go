package logging

// Standard field names for structured log output.
const (
	FieldFile      = "file_path"
	FieldSession   = "session_id"
	FieldCategory  = "category"
	FieldScope     = "scope"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldWeek      = "week"
	FieldRow       = "row"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldDropped   = "dropped"
	FieldDelimiter = "delimiter"
	FieldFormat    = "format"
	FieldOutput    = "output_file"
)
