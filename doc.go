// Package lvgrid is a small toolkit for walking Cartesian products of
// parameter domains: every combination, in a fixed order, restartable at any
// point, or drawn at random.
//
// 🚀 What is inside?
//
//	• param/     — generic enumerable parameters: leaves (Values), pairwise
//	               and three-way products, N-ary products, mapped views,
//	               samplers and range-over-func helpers
//	• sweep/     — named dimensions, filter expressions, YAML/HCL sweep
//	               definitions and run-tagged records
//	• cmd/lvgrid — CLI to count, list, sample and validate sweep files
//
// ✨ Why lvgrid?
//
//   - Composable – products nest, (A×B)×C flattens to the same order as A×(B×C)
//   - Predictable – odometer order, last component varies fastest
//   - Restartable – Reset replays a sequence from its first value at any depth
//   - Random access – At(k) decodes the k-th combination without iterating
//
// Quick example:
//
//	lr := param.MustValues(0.1, 0.01)
//	batch := param.MustValues(32, 64)
//	grid, _ := param.NewProduct(lr, batch)
//	for p := range param.All(grid.Iter()) {
//		fmt.Println(p.First, p.Second)
//	}
//
// prints (0.1 32) (0.1 64) (0.01 32) (0.01 64), one pair per line.
//
//	go get github.com/katalvlaran/lvgrid/param
package lvgrid
