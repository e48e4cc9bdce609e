package domain

// CommonOptions contains output options shared by the CLI commands.
type CommonOptions struct {
	Verbose bool
	JSON    bool
}

// DefaultCommonOptions returns CommonOptions with default values.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{}
}
