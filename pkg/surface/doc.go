// Package surface computes neumorphic styles for the two interactive
// surfaces: a raised button and a card with press and hover treatments.
//
// Every computation is a pure function from an interaction snapshot
// (pressed/hovered/visible flags plus a [0, 1] scroll progress) and a
// theme palette to a [style.Style]. Nothing is cached and nothing reads
// ambient state; callers re-evaluate whenever any input changes.
//
// Shadow intensity follows max(base − progress·k, 0): it decreases
// monotonically as the element scrolls away from the viewport center and
// never goes negative. The pressed (inset) families use fixed magnitudes
// so the pressed-in look does not fade with scroll.
//
// Callers are responsible for clamping progress to [0, 1]; the formulas
// only self-apply the zero floor. See pkg/scroll for a progress source
// that is already clamped.
package surface
