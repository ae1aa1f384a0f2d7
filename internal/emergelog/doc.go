// Package emergelog turns a Portage emerge.log snapshot into completed build
// samples and the set of builds that are still running.
//
// Every meaningful line has the shape
//
//	<unix seconds>:  <marker> <payload>
//
// The timestamp is ten digits until 2286, so the marker always starts at byte
// 13. Bytes [13,18) are enough to tell the interesting lines apart:
//
//	">>> e"  >>> emerge (3 of 7) cat/pkg-1.2 to /                   start
//	"=== ("  === (3 of 7) Merging Binary (cat/pkg-1.2::/path)       binary merge
//	"::: c"  ::: completed emerge (3 of 7) cat/pkg-1.2 to /         end
//	"*** t"  *** terminating.                                       terminate
//
// All offsets of this grammar live in grammar.go. A change in the emitter's
// wording makes lines classify as Unknown; it never makes the scan fail.
//
// The package/version boundary is the first '-' followed by a digit. Package
// names that contain a literal "-<digit>" token are split too early; this is a
// known limitation of the format.
package emergelog
