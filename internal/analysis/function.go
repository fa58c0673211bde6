package analysis

import (
	"regexp"
	"strings"
)

var (
	// A declaration is only recognized when the name, parameter list,
	// visibility keyword and opening brace share one physical line.
	funcDeclRe = regexp.MustCompile(`function\s+([a-zA-Z0-9_]+)\s*\((.*?)\)\s*(public|external|internal|private)\s*(.*?)\s*\{`)

	accessControlRe = regexp.MustCompile(`\b(onlyOwner|onlyRole|require\(msg\.sender\s*==\s*[a-zA-Z0-9_]+\)|_checkRole)\b`)
	payableRe       = regexp.MustCompile(`\bpayable\b`)
)

// FunctionContext is the nearest enclosing declaration for a source line,
// derived lexically. StartLine is 1-based and 0 when no declaration precedes
// the line; Signature is the full matched declaration text.
type FunctionContext struct {
	StartLine int
	Signature string
}

// EnclosingFunction scans backward from line index idx for the nearest
// declaration. Recomputed per query; nothing is cached across matches.
func EnclosingFunction(lines []string, idx int) FunctionContext {
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	for j := idx; j >= 0; j-- {
		if m := funcDeclRe.FindString(lines[j]); m != "" {
			return FunctionContext{StartLine: j + 1, Signature: m}
		}
	}
	return FunctionContext{}
}

func (fc FunctionContext) Payable() bool {
	return payableRe.MatchString(fc.Signature)
}

func (fc FunctionContext) PubliclyVisible() bool {
	return strings.Contains(fc.Signature, "public") || strings.Contains(fc.Signature, "external")
}

func (fc FunctionContext) HasAccessControl() bool {
	return accessControlRe.MatchString(fc.Signature)
}

// BodyHasAccessControl scans forward from line index idx for an
// access-control idiom, treating the first line containing a closing brace as
// the end of the function. Functions with nested blocks are mis-bounded; that
// imprecision is accepted rather than papered over with brace counting.
func BodyHasAccessControl(lines []string, idx int) bool {
	for k := idx; k < len(lines); k++ {
		if strings.Contains(lines[k], "}") {
			break
		}
		if accessControlRe.MatchString(lines[k]) {
			return true
		}
	}
	return false
}
