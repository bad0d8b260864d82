// Package dumpsplit splits a heterogeneous text dump into its constituent
// datasets. It is designed for the single messy file that aggregators and
// exports tend to produce: several differently-formatted tables and blobs
// concatenated back to back.
//
// The core functionalities include:
//   - Section Detection: A fixed registry of header recognizers classifies
//     each line of the dump and opens a section for the matching kind.
//     Sections of the same kind merge into one continuous dataset.
//   - Section Output: Tabular kinds are written as cleaned CSV files,
//     structured kinds as pretty-printed JSON, one file per kind.
//   - Capital Gains: When the dump contains a sales section, a derived
//     gains summary is computed (gain, holding period, short/long term)
//     with exact decimal arithmetic.
//
// This package serves as the foundational logic for the `dsp` command-line
// tool. A single run is synchronous, single-pass, and streams the input, so
// the working set stays bounded no matter how large the dump is.
package dumpsplit
