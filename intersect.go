// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xpathgen

import (
	"fmt"
	"regexp"
)

var elemName = regexp.MustCompile(`^[A-Za-z0-9]+`)

// Intersect returns an expression selecting the nodes strictly between
// the start and end locators, using the Kayessian intersection
//	NS1[count(.|NS2) = count(NS2)]
// of NS1 = nodes following start and NS2 = nodes preceding end.
//
// Locators are relative to the implicit // prefix added here, e.g.
// "h2[1]", not "//h2[1]".
//
// If end is empty it is derived as the next sibling of the same element
// type as start: {start}/following-sibling::{elem}[1], where elem is the
// leading alphanumeric run of start. A start with no leading alphanumeric
// run (for instance one already carrying "//") derives an empty element
// name and the expression degenerates to following-sibling::[1].
func Intersect(start, end string) string {
	if end == "" {
		end = fmt.Sprintf("%s/following-sibling::%s[1]", start, elemName.FindString(start))
	}
	ns1 := fmt.Sprintf("//%s/following-sibling::node()", start)
	ns2 := fmt.Sprintf("//%s/preceding-sibling::node()", end)
	return fmt.Sprintf("%s[count(.|%s) = count(%s)]", ns1, ns2, ns2)
}
