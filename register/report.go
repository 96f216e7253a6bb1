package register

import (
	"fmt"
	"io"
	"os"

	"github.com/nutchun/QuEST/qerr"
)

// maxReportQubits caps ReportStateToScreen: above this the output is not
// human-readable and the guard in the canonical message table applies.
const maxReportQubits = 5

// ReportState writes this partition's amplitudes to state_rank_<chunkID>.csv
// in the working directory, one "%.12f, %.12f" line per local amplitude in
// local order. The "real, imag" header is written by partition 0 only, so
// concatenating the per-partition files in chunk order yields one valid CSV.
// A file that cannot be created surfaces as a FileOpenFailed error.
func ReportState(s State) error {
	filename := fmt.Sprintf("state_rank_%d.csv", s.ChunkID())
	f, err := os.Create(filename)
	if aerr := qerr.Assert(err == nil, qerr.FileOpenFailed, "ReportState"); aerr != nil {
		return aerr
	}
	defer f.Close()

	if s.ChunkID() == 0 {
		fmt.Fprintf(f, "real, imag\n")
	}
	for index := int64(0); index < s.NumAmpsPerChunk(); index++ {
		fmt.Fprintf(f, "%.12f, %.12f\n", s.RealAmp(index), s.ImagAmp(index))
	}
	return nil
}

// ReportParams writes the register geometry summary to w. Only the master
// partition reports; other chunks return silently.
func ReportParams(s State, w io.Writer) {
	if s.ChunkID() != 0 {
		return
	}
	numAmps := int64(1) << s.NumQubits()
	fmt.Fprintf(w, "QUBITS:\n")
	fmt.Fprintf(w, "Number of qubits is %d.\n", s.NumQubits())
	fmt.Fprintf(w, "Number of amps is %d.\n", numAmps)
	fmt.Fprintf(w, "Number of amps per rank is %d.\n", numAmps/int64(s.NumChunks()))
}

// ReportStateToScreen writes this partition's amplitudes to w, one
// "real imag" pair per line, preceded by a rank banner when more than one
// partition exists. Systems above 5 qubits are refused with SystemTooLarge.
func ReportStateToScreen(s State, w io.Writer) error {
	if err := qerr.Assert(s.NumQubits() <= maxReportQubits, qerr.SystemTooLarge, "ReportStateToScreen"); err != nil {
		return err
	}
	if s.NumChunks() > 1 {
		fmt.Fprintf(w, "Chunk %d state:\n", s.ChunkID())
	}
	for index := int64(0); index < s.NumAmpsPerChunk(); index++ {
		fmt.Fprintf(w, "%.12f %.12f\n", s.RealAmp(index), s.ImagAmp(index))
	}
	return nil
}
