// Package trainer provides high-level training orchestration for Tsetlin machines.
// It runs epochs of single-sample fits over a dataset, evaluates after each
// epoch and stops once the target accuracy is reached.
package trainer
