// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xpathgen

import (
	"fmt"
	"strings"
)

// attrFilter builds the conjunction
//	contains(., 'a1') and contains(., 'a2') and ...
// over attrs, wrapped in not(...) if negate is true.
//
// attrs is assumed non-empty; an empty attrs yields an empty
// conjunction (and "not()" if negated). Attribute names are
// interpolated verbatim, no quoting is performed.
func attrFilter(attrs []string, negate bool) string {
	terms := make([]string, len(attrs))
	for i, attr := range attrs {
		terms[i] = fmt.Sprintf("contains(., '%s')", attr)
	}
	filter := strings.Join(terms, " and ")
	if negate {
		filter = fmt.Sprintf("not(%s)", filter)
	}
	return filter
}

// IncludeAttrs returns a predicate matching nodes whose string-value
// contains every given attribute name.
func IncludeAttrs(attrs ...string) string {
	return attrFilter(attrs, false)
}

// ExcludeAttrs returns a predicate matching nodes whose string-value
// does not contain all of the given attribute names. It is the exact
// negation of IncludeAttrs.
func ExcludeAttrs(attrs ...string) string {
	return attrFilter(attrs, true)
}

// ContainsAny returns a predicate matching nodes whose string-value
// contains at least one of the given tags:
//	contains(., "t1") or contains(., "t2") or ...
//
// An empty tags yields the empty string. Note the double quotes; the
// attribute filters use single quotes.
func ContainsAny(tags ...string) string {
	terms := make([]string, len(tags))
	for i, tag := range tags {
		terms[i] = fmt.Sprintf(`contains(., "%s")`, tag)
	}
	return strings.Join(terms, " or ")
}
