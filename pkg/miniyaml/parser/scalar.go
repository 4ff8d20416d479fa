package parser

import (
	"strconv"
	"strings"

	"airgauge-hq/airgauge/pkg/miniyaml/ast"
)

// Lex converts a trimmed literal token into a scalar value. It is a total
// function: a token that matches no other rule is a verbatim string.
//
// Precedence, in order:
//  1. wrapped in a matching pair of double or single quotes: string, quotes
//     stripped, no escape processing
//  2. case-insensitive "true"/"false": boolean
//  3. case-insensitive "null"/"none": null
//  4. parses as an integer (token has no '.'): integer
//  5. parses as a float (token has a '.'): float
//  6. anything else: string, verbatim
func Lex(token string) *ast.Value {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return ast.NewString(token[1 : len(token)-1])
		}
	}

	switch strings.ToLower(token) {
	case "true":
		return ast.NewBool(true)
	case "false":
		return ast.NewBool(false)
	case "null", "none":
		return ast.NewNull()
	}

	if strings.Contains(token, ".") {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return ast.NewFloat(f)
		}
	} else if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return ast.NewInt(i)
	}

	return ast.NewString(token)
}
