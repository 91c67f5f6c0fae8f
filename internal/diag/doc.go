// Package diag defines the diagnostic model shared by the conversion
// pipeline and the report formatters.
//
// # Data model
//
//   - Severity – ordered enum (Ignore, Note, Info, Warning, Error)
//     assigned to each input line by Classify via fixed, case-insensitive
//     marker sets covering the supported tool dialects.
//   - Kind / Tag – distinguish a primary diagnostic from the before/behind
//     context lines the multi-line modes attach to it. Context lines keep
//     the base severity of their diagnostic; illegal combinations such as
//     "a counted context line" are unrepresentable.
//   - Entry – one recorded output line, (Tag, Text).
//   - List – the single mutable result of a pass: the ordered Entry
//     sequence plus per-severity accepted/suppressed counters and the
//     total-lines counter. Append-only; deduplication suppresses
//     creation, never removes.
//
// # Consumers
//
//   - internal/engine: classifies lines and feeds the List.
//   - internal/report: groups entries by base severity and renders
//     text/json/sarif output plus the summary.
//
// Keep the model deterministic and free of IO so reports can be
// rendered and serialised from it without side effects.
package diag
