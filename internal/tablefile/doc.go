// Package tablefile reads and writes enum-like tables as YAML.
//
// A table file is a single YAML mapping. Its key order is the table order
// and each value is decoded into the record type with yaml.v3 struct tags:
//
//	AF: {position: 0, isoCode: af, value: Afrikaans, meta: Afrikaans}
//	AM: {position: 1, isoCode: am, value: Amharic, meta: አማርኛ}
//
// Unlike a plain map decode, Parse keeps the document order and reports
// every duplicate or undecodable entry with its line number.
package tablefile
