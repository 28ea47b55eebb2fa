// Package main provides the tsetlin command. It trains a Tsetlin machine on a
// synthetic boolean dataset, reports its accuracy and keeps a log of runs.
//
//	tsetlin train --dataset column --epochs 5 --run-log runs.db
//	tsetlin train --config tsetlin.yaml --dataset xor --noise 0.1
//	tsetlin runs --run-log runs.db
package main
