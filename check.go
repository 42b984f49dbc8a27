// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xpathgen

import (
	"github.com/santhosh-tekuri/xpathparser"
)

// Check parses expr against the XPath 1.0 grammar and returns the
// parse error, nil if expr is well formed.
//
// The generator functions never validate their output; Check lets
// callers catch degenerate expressions before handing them to an
// engine.
func Check(expr string) error {
	_, err := xpathparser.Parse(expr)
	return err
}
