// Package run defines the strongly-typed run configuration that the whole
// application revolves around: the wizard service owns one per session, the
// paramfile codec hydrates it from keyword-file text and serializes it back.
//
// Every field carries a built-in default, so a Config is never partially
// constructed: hydration only overwrites fields whose keywords are present
// and parseable, and everything else keeps its prior value.
package run
