// Package matcher provides the named leaf predicates that expected
// documents invoke with matcher expressions such as
//
//	@equalsIgnoreCase('lorem')@
//	@matches('[a-z]+-[0-9]{3}')@
//	@ignore@
//
// # Expressions
//
// A string is written as an expression when it is at least three
// characters long and both starts and ends with '@'. ParseExpression then
// requires it to be well formed:
//
//	expr   := '@' name [ '(' [ arg { ',' arg } ] ')' ] '@'
//	name   := [A-Za-z_][A-Za-z0-9_-]*
//	arg    := quoted | bare
//	quoted := "'" ... "'" | '"' ... '"'
//	bare   := text without quotes, commas or parentheses
//
// Inside quotes a backslash makes the next character literal, so
// @contains('a\'b')@ has the argument a'b, and commas and parentheses are
// plain text. A regular expression escape is therefore written with two
// backslashes, as in @matches('\\d+')@, or left unquoted. Whitespace
// between tokens is ignored and bare arguments are trimmed. Anything else
// fails with ErrSyntax rather than being compared as a literal.
//
// # Registry
//
// Symbols are factories keyed by name. Default resolves the built-in
// symbols and those added with Register. Overlay layers per call symbols
// over a registry without changing it. Resolving a name that is not
// present fails with *UnknownMatcherError.
//
// # Context
//
// Matchers receive a *Context holding test variables. @variable('x')@
// stores the value it is applied to; @expr(...)@ can read variables.
package matcher
