package otp

// NumDelayBins is the number of fixed delay bins.
const NumDelayBins = 6

// DelayBinLabels are the ordered labels of the six delay bins. The bins
// partition the real line as (-inf,0], (0,15], (15,30], (30,60], (60,120],
// (120,+inf): each bin is closed on the right, so a delay of exactly 15
// minutes lands in "0-15 min", not "15-30 min".
var DelayBinLabels = [NumDelayBins]string{
	"Early/On time",
	"0–15 min",
	"15–30 min",
	"30–60 min",
	"1–2 hrs",
	"2+ hrs",
}

// delayBinEdges are the right (inclusive) edges of all bins but the last.
var delayBinEdges = [NumDelayBins - 1]float64{0, 15, 30, 60, 120}

// DelayBinIndex returns the index into DelayBinLabels for a departure
// delay in minutes. Every finite delay falls in exactly one bin.
func DelayBinIndex(delayMinutes float64) int {
	for i, edge := range delayBinEdges {
		if delayMinutes <= edge {
			return i
		}
	}
	return NumDelayBins - 1
}
