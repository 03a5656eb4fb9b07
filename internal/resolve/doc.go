// Package resolve computes a node's effective configuration from the layered
// topology hierarchy and decides which properties are inherited.
//
// The merge order, lowest to highest precedence, is:
//
//	topology defaults -> kind overrides -> group overrides -> explicit node values
//
// Each layer is shallow-merged property by property: a later layer's value,
// if meaningfully set, fully replaces the earlier one. Nested records are
// never deep-merged across layers.
//
// A property is "inherited" when its effective value is attributable to a
// layer other than the node itself: the baseline (the same merge without the
// node layer) has a meaningful value, and the node either set nothing or set
// a value structurally equal to that baseline. This distinguishes "the value
// is what it is because nothing more specific was set" from "the node
// deliberately chose this value", even when both happen to coincide.
//
// Everything here is pure: no I/O, no hidden state, and repeated calls with
// unchanged inputs yield deep-equal outputs.
package resolve
