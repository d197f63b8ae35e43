// Package screenplay classifies positioned text spans extracted from a
// screenplay PDF into a typed stream of screenplay elements: title-page
// metadata, scene headings, action, characters, dialogue, parentheticals,
// transitions, page and scene numbers, subheadings, and continuation
// markers.
//
// Classification runs in four passes over the document:
//
//   - a boundary pre-pass that locates the first scene heading or
//     transition in the document, splitting title-page content from
//     screenplay body (see [Classifier.findBoundary]);
//   - a main pass that evaluates a fixed priority sequence of
//     [ElementPredicates] against each element in document order, updating
//     a mutable [Context] as column positions are discovered;
//   - a second pass, run per group, that retroactively recovers titles,
//     detects dual dialogue, and recovers subheadings missed on the main
//     pass;
//   - a final pass that folds any still-unclassified element at or after
//     the screenplay boundary into action, provided a scene heading was
//     found anywhere in the document.
//
// The package is a pure function of its input: classifying the same
// [Document] twice yields the same [Script]. It performs no I/O; PDF
// extraction and language detection are the caller's concern (see the
// extract and langdetect packages).
package screenplay
