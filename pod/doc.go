// Package pod implements the transformation engine for API-reference
// documentation trees.
//
// The input is an element tree produced by an external markup parser from
// structured source comments (the Pod vocabulary: headings, paragraphs,
// definition lists, inline spans and directives). The engine merges declared
// Input/Output parameter blocks across named sections according to inline
// merge directives, repairing missing structure on the way, tags definition
// lists with CSS classes for the viewer, and hands the result to the render
// package.
//
// We want exhaustive handling of the tree: it is not the fastest way but it
// keeps behavior easy to verify against the source vocabulary and gives us
// detailed debug output.
package pod
