// Package rect holds signed hyper-rectangle decompositions.
//
// A List is the output of a hypervolume decomposition: every entry is an
// axis-aligned box given by explicit lower and upper bounds and a sign in
// {+1, -1}. The signed sum of box volumes equals the hypervolume of the
// front that produced the list.
//
//	l := rect.New(3, 0)
//	i, _ := l.Append(+1)
//	copy(l.Upper(i), []float64{1, 2, 3})
//	v := l.SignedVolume() // 6
package rect
