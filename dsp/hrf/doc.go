// Package hrf models the haemodynamic response measured by fMRI as the
// convolution of a stimulus train with a haemodynamic response function.
//
// The HRF is the stereotyped blood-flow response to a single, instantaneous
// stimulus. Because the response system is treated as linear and time
// invariant, the predicted signal for any stimulus train is the train
// convolved with the HRF, and the prediction for several trains is the sum of
// their individual predictions:
//
//	kernel := hrf.Tutorial()
//	train, _ := signal.ImpulseTrain(61, 10, 16)
//	bold, _ := hrf.Predict(train, kernel)
//
// Two kernels are provided: the 20-sample [Tutorial] shape and the
// SPM-style [DoubleGamma] canonical HRF sampled at an arbitrary step.
package hrf
