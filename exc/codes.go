package exc

const (
	CodeNullArgument    = "F0001"
	CodeInvalidArgument = "F0002"
	CodeInvalidState    = "F0003"
)
