// Package net adapts a feed-forward network to the runner classifier interface.
// Classes are one-hot encoded on a softmax output layer, every training sample is one online training step.
package net

import (
	"errors"
	"fmt"
	"math"

	"github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
)

// ErrInvalidSample is returned for classes or features that do not match the network shape.
var ErrInvalidSample = errors.New("net: invalid sample")

// Network is a tanh feed forward network with a softmax output.
type Network struct {
	features int
	classes  int
	net      *ff.Network
	loss     float64
	samples  int
}

// New creates a new network for the given number of input features and output classes.
// The hidden layer has ten cells per feature.
func New(features, classes int) *Network {
	rate := ml.Learn(1, 0.1)

	initW := xmath.Rand(0, 1, math.Sqrt)
	initB := xmath.Rand(0, 1, math.Sqrt)
	network := ff.New(features, classes).
		Add(10*features, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(classes, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(classes, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(ml.Pow)

	return &Network{
		features: features,
		classes:  classes,
		net:      network,
	}
}

// Train runs one training step for the sample.
func (n *Network) Train(class int, features []float64) error {
	if class < 0 || class >= n.classes {
		return fmt.Errorf("class %d outside of [0, %d): %w", class, n.classes, ErrInvalidSample)
	}
	if err := n.check(features); err != nil {
		return err
	}
	out := make([]float64, n.classes)
	out[class] = 1

	loss, _ := n.net.Train(xmath.Vec(n.features).With(features...), xmath.Vec(n.classes).With(out...))
	n.loss = loss.Norm()
	n.samples++
	return nil
}

// Classify returns the class with the highest output.
func (n *Network) Classify(features []float64) (int, error) {
	if err := n.check(features); err != nil {
		return 0, err
	}
	out := n.net.Predict(xmath.Vec(n.features).With(features...))
	best := 0
	for i, v := range out {
		if v > out[best] {
			best = i
		}
	}
	return best, nil
}

// Loss returns the loss of the last training step.
func (n *Network) Loss() float64 {
	return n.loss
}

// Samples returns the number of training steps.
func (n *Network) Samples() int {
	return n.samples
}

func (n *Network) check(features []float64) error {
	if len(features) != n.features {
		return fmt.Errorf("expected %d features but got %d: %w", n.features, len(features), ErrInvalidSample)
	}
	return nil
}
