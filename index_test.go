// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xpathgen

import "testing"

func TestIndex(t *testing.T) {
	tests := []struct {
		root, nodeset string
		want          string
	}{
		{"//table/tr", "td", `count(//table/tr/td/preceding-sibling::*)`},
		{"//ul", "li[2]", `count(//ul/li[2]/preceding-sibling::*)`},
	}
	for _, test := range tests {
		if got := Index(test.root, test.nodeset); got != test.want {
			t.Errorf("FAIL: Index(%q, %q): expected %#v, but got %#v", test.root, test.nodeset, test.want, got)
		}
	}
}
