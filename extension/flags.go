// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagCount      = "count"       // Output count only
	FlagDryRun     = "dry-run"     // Preview without making changes
	FlagIgnoreCase = "ignore-case" // Case-insensitive matching
	FlagLocal      = "local"       // Use local scope
	FlagLocations  = "locations"   // Print ISBN:page:line only
	FlagLong       = "long"        // Long format output
	FlagRaw        = "raw"         // Raw output without rendering
	FlagStats      = "stats"       // Show library totals

	// String flags

	FlagFormat = "format" // Corpus file format (json, yaml)
	FlagSplit  = "split"  // Directory for one file per book
	FlagTo     = "to"     // Destination file

	// Slice flags

	FlagISBN = "isbn" // Restrict to these books
)
