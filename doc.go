// Package dbase reads and writes xBase-family database files: the
// .dbf main-table format and its companion .dbt memo-block file.
//
// # Core features
//
//   - Two-phase table model: columns mutable until locked, rows mutable
//     only once locked
//   - Fixed-width field codec for all twelve xBase column types (C, D,
//     F, N, L, M, G, B, I, +, O, @)
//   - A 512-byte-block memo heap for M/G/B columns, with multi-block
//     spanning
//   - Caller-selected text encoding for type-C values (default UTF-8)
//
// # Basic usage
//
// Building and writing a table:
//
//	s := schema.New()
//	s.AddColumn("name", coltype.String, 20)
//	s.AddColumn("dob", coltype.Date, 8)
//	s.Lock()
//	s.AddRow([]string{"Ada Lovelace", "18151210"})
//
//	w := dbf.NewWriter()
//	var dbfBuf bytes.Buffer
//	w.Write(&dbfBuf, s)
//
// Reading one back:
//
//	r := dbf.NewReader()
//	decoded, err := r.Read(dbfBuf.Bytes())
//
// If the schema has a memo-indirected column (M, G, or B), fetch the
// companion DBT buffer from the same Writer and decode it with the dbt
// package; pass the resulting *dbt.Reader to dbf.WithMemoSource so the
// DBF Reader can resolve memo fields:
//
//	w.WriteDBT(&dbtBuf)
//	memoReader, _ := dbt.NewReader(dbtBuf.Bytes())
//	r := dbf.NewReader(dbf.WithMemoSource(memoReader))
//
// This package does not perform file I/O itself; callers supply an
// io.Writer as the byte sink and a []byte as the byte source at the
// boundary.
package dbase
