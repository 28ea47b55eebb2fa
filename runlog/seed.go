package runlog

import "strconv"

func formatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}

func parseSeed(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
