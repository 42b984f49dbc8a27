// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xpathgen generates XPath 1.0 expression strings for common
HTML/XML querying patterns: node-sets between two boundary nodes,
attribute include/exclude filters, sibling-index computation and
tag-containment predicates.

This package only builds strings. It never parses documents or
evaluates expressions; the generated strings are meant to be handed
to an XPath engine. Inputs are interpolated verbatim, so malformed
locators produce malformed expressions rather than errors. Use Check
to detect such output before evaluation.

See examples for usage.
*/
package xpathgen
