// Package calc implements a floating-point calculator for infix arithmetic.
//
// Expressions contain numbers, the binary operators + - * / ^, parentheses,
// and unary minus. "^" is exponentiation and is right-associative, so
// "2^3^2" is "2^(3^2)". Unary minus binds tighter than anything else, so
// "-2^2" is "(-2)^2". A number or close paren directly followed by an open
// paren is a multiplication: "5(3)" and "(2)(3)" are both products. Spaces
// and any other characters are ignored, which also means "1 2" is the number
// 12.
//
// Evaluation happens in three steps, each of which is exported: Tokenize
// splits the input into tokens, ToPostfix reorders them into postfix order,
// and EvalPostfix computes the result with a value stack. Eval runs all
// three.
package calc
