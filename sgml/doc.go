// Package sgml writes OFX documents in the SGML encoding used by OFX
// versions before 2.0.
//
// A Writer emits a header block followed by a tree of aggregates and
// elements supplied as a sequence of calls. It tracks the aggregate depth
// for indentation and escapes element values, but it does not hold the
// document in memory and does not check that aggregates are closed in
// order.
//
// # Example
//
//	w := sgml.NewWriter(out, sgml.WithTabLength(0))
//	if err := w.WriteHeaders(map[string]string{"NEWFILEUID": "1001"}); err != nil {
//	    return err
//	}
//	w.WriteStartAggregate("OFX")
//	w.WriteStartAggregate("SIGNONMSGSRSV1")
//	w.WriteElement("DTSERVER", "20240101120000")
//	w.WriteEndAggregate("SIGNONMSGSRSV1")
//	w.WriteEndAggregate("OFX")
//	return w.Close()
//
// # Output
//
// Line breaks are always "\r\n". Element values have '&', '<' and '>'
// replaced by entity references; names are written as given. Output
// produced by NewWriter is ISO-8859-1.
//
// # Styles
//
// With the default Config, aggregates are indented by four spaces per
// level but no line breaks are written and elements are left unclosed,
// which is valid SGML since the closing tag of a leaf is implied.
// WriteAttributesOnNewLine, WriteValuesOnNewLine and AlwaysCloseElement
// produce a line-oriented, XML-looking rendition. The configuration may be
// changed between calls with SetConfig and applies from the next call on.
package sgml
