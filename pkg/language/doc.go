/*
Package language implements set algebra over finite languages.

Every function takes and returns domain.Language values and never mutates its
arguments. Results are sets: the enumeration order of a result carries no
meaning, and Language.Words gives a sorted view when one is needed.

# Closures

True Kleene and positive closures of a language with a non-empty word are
infinite. BoundedKleeneClosure and BoundedPositiveClosure stop at an explicit
maxPower and are approximations of the real closure, never equal to it except
in the degenerate cases reported by Closure.

# Cost

Power and the closures grow as |L|^n. The package has no interruption points;
callers bound n and maxPower before calling.
*/
package language
