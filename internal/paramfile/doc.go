// Package paramfile implements the bidirectional codec for the AMPS_PARAM.in
// keyword file format: a forgiving line-oriented parser that turns raw text
// into a keyword map, a hydrator that coerces the map into a run.Config
// without ever failing, and the serializer producing canonical text the
// parser re-reads losslessly.
//
// The grammar is fixed: `!` opens comments (inline and full-line), `#NAME`
// marks a section, `KEYWORD value` sets a parameter, `! KEYWORD value` is a
// disabled advanced parameter that is recovered only when no active line for
// the same keyword exists, and the #START_POINTS/#END_POINTS block holds the
// multi-line point list. Unknown keywords and malformed lines are ignored so
// old builds keep reading files written by newer ones.
//
// The only surfaced failure is the sanity gate: text with no recognized
// section header at all is rejected before any parsing work.
package paramfile
