// Package units converts physical dimension strings into millimetres.
//
// SVG documents meant for laser cutters and printers declare their canvas
// size with a unit suffix (width="50mm", height="3.5cm"). Panelization only
// understands the two metric suffixes those tools emit; everything else is
// rejected with an [errors.ErrCodeInvalidLength] error that names the
// offending string.
//
// # Lengths
//
// [ParseLength] strips a two-character suffix and normalizes to millimetres:
//
//	units.ParseLength("50mm") // 50
//	units.ParseLength("2.5cm") // 25
//	units.ParseLength("5px")  // error
//
// [ParseOffset] is the lenient variant used for spacing flags, where a bare
// number is read as millimetres.
//
// # Formatting
//
// [FormatNumber] writes the shortest decimal form of a float without an
// exponent, which is what transforms and view boxes in the output use:
//
//	units.FormatNumber(20)   // "20"
//	units.FormatNumber(0.25) // "0.25"
//
// [errors.ErrCodeInvalidLength]: github.com/matzehuels/panelize/pkg/errors
package units
