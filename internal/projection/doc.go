/*
Package projection maps a document tree onto a tree of edit controls.

# Overview

Project walks a value.Value depth first and issues one primitive widget
call per node through the Widgets interface. Whatever the widget reports
back as committed is written straight into the node being visited, so the
document is always the single source of truth and nothing is copied
between frames.

# Identity

Every node consumes exactly one integer from the caller's counter, in
pre-order: object members in stored order, array elements by index. The
counter is pre-incremented, so with a fresh counter of 0 the root is 1.
Subtrees that are not visited (children of a collapsed group, channels of
a color array) still advance the counter by their node count, which keeps
a node's identity independent of what is expanded on screen.

Controls are scoped with PushID/PopID around each node so two siblings
sharing a label never collide.

# Dispatch

  - null: read-only label
  - bool: toggle
  - int / float / string: typed input
  - array named like a color (see package color): color editor
  - array: group whose elements are labeled name[i]
  - object: group, always open at depth 0, open by default below
*/
package projection
