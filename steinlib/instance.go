package steinlib

// Instance is a fully parsed SteinLib file: 0-based vertex ids (converted
// from the format's 1-based numbering), edges in file order, and terminals
// in file order.
type Instance struct {
	N int64
	M int64
	K int64

	Edges     [][3]int64 // u, v, weight
	Terminals []int64

	Cost    int64
	HasCost bool
}
