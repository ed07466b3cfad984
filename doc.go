/*
Package linebreak implements the Unicode Line Breaking Algorithm for Go.

This package conforms to:
  - Unicode Standard Annex #14 (https://unicode.org/reports/tr14/) for line breaking
  - Unicode version 11.0.0

# Overview

Given a string (or rune sequence) of Unicode scalar values, this package
tells you, for every position between two adjacent scalar values, whether a
line break there is mandatory, merely allowed, or prohibited. This is the
algorithm behind word wrap: it finds the candidate positions; your layout
code decides which of the allowed ones to actually take based on available
width.

	"Hello world" -> breaks allowed after "Hello " and after "world"
	"a­b"    -> break allowed after the soft hyphen, nowhere else
	"日本語"        -> breaks allowed between every ideograph

# Getting Started

For iteration over a whole string:
  - [NewBreaker] / [NewBreakerString] - construct a pull-based iterator
  - [Breaker.Next] - the one operation it exposes

For a single class lookup:
  - [ClassOf] - classify one scalar value without iterating

For convenience splitting:
  - [FirstLineSegment] / [FirstLineSegmentInString] - pull one segment at a time
  - [SplitFunc] - a [bufio.SplitFunc] for use with [bufio.Scanner]
  - [Lines] - split a whole string into non-overlapping segments at once

# The Pair Break Engine

The hard part of UAX #14 is that break decisions depend on the *pair* of
classes on either side of a candidate boundary, evaluated against an ordered
rule table, with a small amount of context carried across scalars: the
class before a run of spaces, whether we're in the middle of a
regional-indicator (flag emoji) pair, a one-step override for combining
marks, and a one-step deferred prohibition after a Hebrew letter followed by
a hyphen. [Breaker] carries exactly that context and nothing else; it is
O(1) in memory regardless of input length and safe to stop early.

# What This Package Does Not Do

It does not segment text into grapheme clusters, words, or sentences (see
UAX #29 for that), it does not hyphenate or justify, and it does not
reorder bidirectional text. It also does not tailor line breaking to a
locale beyond the substitutions UAX #14 itself mandates before pair
processing (LB1).

# Class Data

[ClassOf] answers from a table compiled ahead of time from the Unicode
Character Database; see the generator tagged "generate" at the module root
for how that table is produced. Updating to a newer Unicode version means
regenerating it, not touching the decision logic in this package.
*/
package linebreak
