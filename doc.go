/*
Package chronofmt is about turning calendrical values into text and back.

Description

Date and time values travel as text in a surprising number of shapes:
"2008-06-30", "30 June 2008", "Mon, 30 Jun 2008 11:05:30 +0200",
"11:05:30.123456789Z", and so on. Producing any one of these shapes from
field values is easy; producing all of them, and reading all of them back
in, with locale-aware digits, month names, sign rules, two-digit years and
optional sections, is not. chronofmt provides a composable engine for this:
small printer-parser elements (literals, numbers, fractions, localized
text, offsets, zones) are assembled by a builder into a single immutable
Formatter which renders field values to text and parses text back into
field values.

The engine deliberately knows nothing about calendars. It does not resolve
a day-of-month against a month length, it does not know about leap years,
and it does not load timezone rule data. It reads field values through a
small accessor interface and writes parsed values into a plain field map;
interpreting those values is the business of whatever calendar system sits
on top. What the engine does own, completely, is the text side: widths,
signs, padding, case folding, strict and lenient matching, and the
backtracking needed for optional pattern sections.

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

Contents

The base package holds the vocabulary shared by the engine and its
clients: field rules (identifiers for calendrical quantities like
day-of-month), the accessor interfaces through which values are read and
written, and fixed UTC offsets. The actual engine lives in sub-package
format; locale-dependent symbols and names live in sub-package symbols.
*/
package chronofmt

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
