// Package lvplot is a toolbox for scripting gnuplot figures from Go: typed,
// deterministic builders that compile plot settings into gnuplot commands.
//
// 🚀 What is lvplot?
//
//	A small, dependency-light library whose packages each own one piece of
//	a figure and render it as script text:
//		• key/     — the legend: position, stacking, justification, order,
//		             title and border, compiled into one "set key" line
//		• keyconf/ — the same legend described in TOML or YAML
//		• cmd/lvkey — command-line front end for keyconf
//
// ✨ Why choose lvplot?
//
//   - Deterministic – same settings ⇒ byte-identical script
//   - Typed – closed enums instead of free-form strings
//   - Write-only – output is plain text; feed it to gnuplot by file or pipe
//
// Quick example:
//
//	p := key.New(key.WithPosition(key.Inside(key.Top, key.Right)))
//	fmt.Print(p.Script()) // set key on inside top right
//
//	go get github.com/katalvlaran/lvplot
package lvplot
