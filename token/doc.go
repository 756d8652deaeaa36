// Package token lexes XML byte streams into raw tokens.
//
// The lexer is deliberately small: it recognizes start tags, end tags,
// self-closing tags, character data, CDATA sections, comments,
// processing instructions and directives, and nothing else. Attributes
// are scanned past and discarded. Entity references are resolved inside
// character data. It does not validate nesting; that is the event
// layer's business.
package token
