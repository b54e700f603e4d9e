// Package nelab is a small dense linear-algebra toolkit: a matrix kernel,
// a matrix document codec and a command-line calculator on top of them.
//
// Under the hood, everything is organized under these packages:
//
//	matrix/    Dense type, arithmetic, vector geometry, determinant, inverse, rank
//	matrixio/  YAML/JSON matrix documents (decode, load, encode)
//	config/    CLI configuration: defaults, YAML file, NELAB_* environment
//	cmd/nelab/ the nelab command
//	examples/  runnable demos
//
// Quick example:
//
//	A := [[1, 2]
//	      [3, 4]]   det(A) = -2, A·A = [[7, 10] [15, 22]]
//
//	go install github.com/katalvlaran/nelab/cmd/nelab@latest
package nelab
