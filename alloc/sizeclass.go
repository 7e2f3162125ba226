package alloc

// numClasses is the number of segregated free-list classes. The
// boundaries below are pinned exactly and are not a construction-time
// option.
const numClasses = 16

// classUpperBound[i] is the largest block size (in bytes) that belongs to
// class i. The table has no entry for the last class — class 15 is
// everything above classUpperBound[14].
var classUpperBound = [numClasses - 1]int{
	32, 48, 64, 96, 128, 256, 512, 1024,
	2048, 4096, 8192, 16384, 65536, 131072, 262144,
}

// classIndex maps a block size to its free-list class by first match
// against the step table above. The mapping is a pure function of size
// and is monotone: a <= b implies classIndex(a) <= classIndex(b).
func classIndex(size int) int {
	for i, bound := range classUpperBound {
		if size <= bound {
			return i
		}
	}
	return numClasses - 1
}
