// Package register provides read-only introspection and reporting over the
// externally-owned state-vector handle. The backend allocates and owns the
// amplitude storage; this package only reads scalar fields from it and
// writes reports.
package register

// State is the view this layer has of the backend's amplitude storage:
// register geometry, partition identity, and per-amplitude accessors.
// Amplitude indices are local to the partition, in [0, NumAmpsPerChunk).
type State interface {
	// NumQubits reports the register size in qubits.
	NumQubits() int
	// NumAmpsPerChunk reports how many amplitudes this partition holds.
	NumAmpsPerChunk() int64
	// NumChunks reports how many partitions the full vector is split into.
	NumChunks() int
	// ChunkID identifies this partition; 0 is the master partition.
	ChunkID() int
	// RealAmp returns the real component of the local amplitude at index.
	RealAmp(index int64) float64
	// ImagAmp returns the imaginary component of the local amplitude at index.
	ImagAmp(index int64) float64
}

// NumAmps returns the total amplitude count across all partitions.
func NumAmps(s State) int64 {
	return s.NumAmpsPerChunk() * int64(s.NumChunks())
}

// ProbAmp returns the probability weight |amp|² of the local amplitude at
// index, i.e. real² + imag².
func ProbAmp(s State, index int64) float64 {
	re := s.RealAmp(index)
	im := s.ImagAmp(index)
	return re*re + im*im
}
