// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xpathgen

import "fmt"

// Index returns an expression counting the elements preceding the
// nodes selected by nodeset under root:
//	count({root}/{nodeset}/preceding-sibling::*)
//
// When nodeset selects a single node the result is its 0-based sibling
// index; add one for a positional predicate.
func Index(root, nodeset string) string {
	return fmt.Sprintf("count(%s/%s/preceding-sibling::*)", root, nodeset)
}
