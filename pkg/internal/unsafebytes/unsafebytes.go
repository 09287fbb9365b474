// Package unsafebytes converts between strings and byte slices without
// copying. Callers must not mutate the result of StringToBytes nor the input
// of BytesToString while the other alias is alive.
package unsafebytes

import (
	"strconv"
	"unsafe"
)

func BytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func BytesToInt64(b []byte) (int64, error) {
	return strconv.ParseInt(BytesToString(b), 10, 64)
}

func BytesToFloat64(b []byte) (float64, error) {
	return strconv.ParseFloat(BytesToString(b), 64)
}
