// Package order contains the order aggregate and its status vocabulary.
//
// The aggregate owns the single piece of mutable state in the system: the
// lifecycle status. Everything else on an order is immutable after creation.
// The vocabulary is a closed set of eight states; membership is enforced at
// every gate, sequencing deliberately is not.
package order
