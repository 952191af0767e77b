package photonmap

import "errors"

var (
	ErrInvalidPhotonCount   = errors.New("photonmap: photon count must be positive")
	ErrInvalidBounceDepth   = errors.New("photonmap: max bounces must not be negative")
	ErrInvalidNeighborCount = errors.New("photonmap: neighbor count must not be negative")
	ErrInvalidGatherArea    = errors.New("photonmap: minimum gather area must be positive")
	ErrInvalidBatchSize     = errors.New("photonmap: batch size must be positive")
	ErrInvalidLeafSize      = errors.New("photonmap: kd-tree leaf size must be positive")
)
