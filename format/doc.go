/*
Package format implements a composable date-time printing and parsing
engine.

Description

A Formatter is a chain of small printer-parser elements: literals,
numeric fields with width and sign rules, reduced two-digit-style years,
fractions, localized month and weekday names, UTC offsets and timezone
identifiers, plus decorators for padding, case folding and strictness.
Formatters are assembled with a Builder, either through explicit append
calls,

   b := format.NewBuilder()
   b.AppendValueStyled(chronofmt.Year, 4, 10, format.SignExceedsPad)
   b.AppendLiteralRune('-')
   b.AppendValueFixed(chronofmt.MonthOfYear, 2)
   f := b.Build()

or compiled from one of two pattern languages. The letter-based language
is the familiar one ("yyyy-MM-dd"), where the repetition count of a
letter selects width and style. The description language is the
canonical one ("Value(Year,4)'-'Value(MonthOfYear,2)"): it is what a
Formatter reports from String(), and it parses back into an equivalent
Formatter, so formatters can be serialized and reconstructed.

Parsing inside the engine never allocates errors. Elements report a
mismatch by returning the bitwise complement of the position at which
matching failed, and a composite containing an optional section uses
that to roll back and continue after the section. Only the whole-string
entry point Parse converts a terminal mismatch into a *ParseError.

Parse contexts are short-lived objects with a high fluctuation under
load, so the package keeps them in a pool and recycles them across
calls.

BSD License

Copyright © 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package format

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
