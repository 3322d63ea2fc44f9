// Package templog reads semicolon-delimited temperature logs.
//
// # Log format
//
// One reading per line, three fields separated by ';':
//
//	2024-10-20 12:00:00;Location1;20.5
//
// There is no header row. Trailing blank lines are permitted and ignored;
// only the last non-blank line matters.
//
// # Reading the latest observation
//
// Latest reads the file in one forward pass, keeps the last non-blank line,
// and parses it:
//
//	reading, err := templog.Latest("/var/lib/sensors/livingroom.txt")
//	if err != nil {
//		// surface err to the display
//	}
//
// # Error taxonomy
//
// Failures are typed so callers can distinguish them:
//
//   - ErrEmptyLog: the file has no non-blank lines
//   - MalformedLineError: the last line does not split into three fields
//   - InvalidTemperatureError: the temperature field is not numeric
//   - FileAccessError: the file could not be opened or read
//
// The field-count check precedes the numeric check, so a line of bare
// delimiters (";;") fails on its empty temperature field, not on shape.
//
// # Design notes
//
// The package is intentionally small and stateless: no watching, no history,
// no retry. The caller decides when to read again. A concurrent writer
// appending mid-read is not guarded against; whatever content is present at
// read time is what gets parsed, and a torn trailing line surfaces as a
// normal parse error that clears on the next read.
package templog
