// Command hvwfg computes hypervolumes, box decompositions and Pareto filters
// for fronts stored in WFG text files.
//
//	hvwfg hv --ref 10,10 fronts.txt
//	hvwfg decompose fronts.txt.zst
//	hvwfg pareto --out filtered.txt.gz --compress gzip raw.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
