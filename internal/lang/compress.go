package lang

// Compress shortens s for safe embedding in a diagnostic message
// (spec.md §4.A: tokens over 32 characters are truncated with "...").
// Exported so internal/vm can apply the same rule to variable names in
// runtime-error messages.
func Compress(s string) string {
	return compress(s)
}
