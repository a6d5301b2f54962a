// Package token defines lexical token kinds, trivia, and the reserved-word
// table for the Logo dialect.
//
// Invariants:
//   - Token.Span always covers the token's source bytes (Start..End).
//   - Token.Text holds the lexeme; for StringLit it is the string contents
//     without the delimiting quotes, for everything else the exact source
//     slice.
//   - Int/Float/Bool payloads are meaningful only for IntLit/FloatLit/BoolLit.
//   - Comments (% ... end of line) and whitespace never appear in the
//     significant token stream; they attach to the next token as Leading
//     trivia.
//   - Reserved-word matching is case-insensitive (VAR, var, Var all match);
//     identifier lexemes are preserved with their original case.
package token
