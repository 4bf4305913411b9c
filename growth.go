package dynarr

// Growth policy. All arithmetic is done in uint64 regardless of the index
// width so that doubling a capacity near a narrow type's bound cannot wrap.

// minFloorSlots is the smallest allocation made when growing from empty or
// nearly empty, so a container that starts at zero does not reallocate for
// every one of its first few appends.
const minFloorSlots = 4

// growCapacity computes the capacity to allocate when a container of the
// given capacity must grow by inc elements. The caller has already verified
// cur+inc <= limit. The result is at least cur+inc, at least double the current
// capacity when that fits under the limit, and never below the minimum floor.
func growCapacity(cur, inc, limit uint64) uint64 {
	mustHave := cur + inc

	// Halve max rather than doubling cur so the comparison cannot wrap.
	wantToHave := limit
	if cur <= limit/2 {
		wantToHave = 2 * cur
	}

	newCap := mustHave
	if wantToHave > newCap {
		newCap = wantToHave
	}
	if floor := minFloor(limit); floor > newCap {
		newCap = floor
	}
	return newCap
}

// shouldShrinkFor decides whether a bulk assignment of n elements should
// reallocate: always when the current capacity cannot hold n, and also when
// the capacity is more than double what the assignment needs, so a large
// container shrunk by assignment does not retain grossly oversized storage.
func shouldShrinkFor(capacity, n, limit uint64) bool {
	keep := minFloor(limit)
	if n > keep {
		keep = n
	}
	return capacity < n || capacity/2 > keep
}

func minFloor(limit uint64) uint64 {
	if limit < minFloorSlots {
		return limit
	}
	return minFloorSlots
}
