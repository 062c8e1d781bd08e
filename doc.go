// Package iniconf reads "INI-style" text-based configuration files with
// "name=value" pairs grouped into sections.
//
// Syntax
//
// Input is read byte by byte and split into lines ending in LF, CRLF or CR.
// A UTF-8 byte order mark at the very start of the input is skipped.
//
//	; a comment
//	# another comment
//	top = entries before any header belong to the section ""
//	[section]
//	name = value
//	flag
//	long = a value \
//	       split over two lines
//
// A line whose first non-blank character is '#' or ';' is a comment.
// Comments only ever take whole lines: in "name = a # b" the value is
// "a # b".
//
// "[name]" starts a section. Text after the closing bracket on the same line
// is read as an entry. A header lacking its closing bracket ends at the end
// of the line.
//
// Every other non-blank line is an entry: a name, optionally followed by '='
// and a value. Blanks around names and values are dropped; a name without
// '=' has the empty value, and an entry with an empty name is ignored.
// A backslash at the end of a line is removed and joins the line with the
// next; any other backslash is kept as it is. There is no quoting.
//
// Reading
//
// There are three ways of consuming configuration text. Parse and its
// variants call a Handler for every entry, which is the lowest-level and
// allocation-light interface. Load builds a Config that can be queried and
// written back. ReadInto sets the values into the fields of a user-defined
// struct, the way gcfg does; see ReadInto for how names map to fields and
// how values are parsed.
//
// Each of these comes as a method of Parser, which limits the size of an
// entry and takes a go-kit logger for diagnostics, and as a package-level
// function using a zero Parser.
//
// Errors
//
// Parsing stops at the first error returned by a Handler, which is passed
// through unchanged, or at a *ParseError for a read error or an entry
// exceeding Parser.MaxEntrySize (ErrNoMem). Recoverable oddities in the
// input are not errors; they are logged at debug level.
//
// The subpackages scan, print and strbuf hold the string scanners,
// formatters and growable buffer the parser is built on.
package iniconf
