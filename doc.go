// Package graphqlsyntax is a library for working with GraphQL documents at the syntax level.
//
// It contains a zero-copy lexer, recursive descent parsers for the executable
// and type system grammars, a tree AST, a configurable pretty printer and a
// token level minifier. The packages are meant as low level building blocks
// for GraphQL tooling: formatters, linters, code generators, proxies.
//
// The core packages have no third-party dependencies. Parsing borrows text
// from the input buffer by default and can copy it out on request, printing
// produces a canonical form that parses back to an equal document.
//
// Start with pkg/astparser to parse, pkg/astprinter to format and
// pkg/astminify to strip ignored characters.
package graphqlsyntax
