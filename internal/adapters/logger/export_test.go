// export_test.go exports private functions for white-box testing.
package logger

// CollectErrorEntriesExported and FormatErrorEntriesExported expose the error formatting helpers.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
