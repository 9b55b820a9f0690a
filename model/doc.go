// Package model defines the data types shared by the hvgo packages.
//
// # Fronts
//
// A Front is a dense matrix of Points x Objectives values stored either
// point-major (RowMajor) or objective-major (ColMajor). At gives uniform
// point-major access regardless of layout:
//
//	f := model.FromRows([][]float64{{1, 5}, {3, 3}, {5, 1}})
//	v := f.At(1, 0) // 3
//
// # Reference Points
//
// A Reference has one coordinate per objective; a nil Reference stands for
// the origin.
package model
