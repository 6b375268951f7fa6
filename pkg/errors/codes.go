package errors

type Code string

const (
	CodeUnknown              Code = "UNKNOWN"
	CodeInternal             Code = "INTERNAL_ERROR"
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	CodeConfigReadError      Code = "CONFIG_READ_ERROR"
	CodeConfigParseError     Code = "CONFIG_PARSE_ERROR"
	CodeConfigValidation     Code = "CONFIG_VALIDATION_ERROR"
)

func (c Code) String() string {
	return string(c)
}
