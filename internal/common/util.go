package common

import (
	"os"
)

func IsExist(f string) bool {
	_, err := os.Stat(f)
	return err == nil || os.IsExist(err)
}

// GetUnionSet merges two ascending id lists.
func GetUnionSet(a []int64, b []int64) []int64 {
	unionSet := make([]int64, 0, len(a)+len(b))
	pA := 0
	pB := 0
	for pA < len(a) && pB < len(b) {
		if a[pA] < b[pB] {
			unionSet = append(unionSet, a[pA])
			pA++
		} else if b[pB] < a[pA] {
			unionSet = append(unionSet, b[pB])
			pB++
		} else {
			unionSet = append(unionSet, a[pA])
			pA++
			pB++
		}
	}
	unionSet = append(unionSet, a[pA:]...)
	unionSet = append(unionSet, b[pB:]...)
	return unionSet
}

// a,b pre-order
func CommonSubset(a, b []int64) []int64 {
	i, j := 0, 0
	result := []int64{}
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			i++
		} else if a[i] > b[j] {
			j++
		} else {
			result = append(result, a[i])
			i++
			j++
		}
	}

	return result
}
