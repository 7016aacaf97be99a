// Package signal builds stimulus sequences sampled at unit time steps.
//
// An impulse train marks event onsets with 1 against a background of 0:
//
//	train, err := signal.ImpulseTrain(61, 10, 16)
//
// A boxcar train marks sustained blocks of stimulation:
//
//	block, err := signal.BoxcarTrain(100, 10, 20, 60)
//
// Both constructors treat their onsets as a set. Trains are combined
// additively with conv.Sum.
package signal
