package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = itoa(n)
	}
	return strings.Join(parts, " ")
}

func demoSlices(w *sectionWriter) {
	vec := []int{1, 2, 3, 4, 5}

	vec = append(vec, 6)
	vec = append(vec, 7)
	w.printf("Slice: %s", joinInts(vec))

	w.printf("Len: %d", len(vec))
	w.notef("Cap: %d", cap(vec))

	w.printf("vec[0]: %d", vec[0])
	w.printf("vec[1]: %d", vec[1])
	w.printf("first: %d", vec[0])
	w.printf("last: %d", vec[len(vec)-1])
	w.printf("vec[2:4]: %v", vec[2:4])

	var indexed []string
	for i, v := range vec {
		indexed = append(indexed, fmt.Sprintf("%d:%d", i, v))
	}
	w.printf("With index: %s", strings.Join(indexed, " "))

	grid := make([][]int, 2)
	for i := range grid {
		grid[i] = make([]int, 3)
		grid[i][i] = 1
	}
	w.printf("2x3 grid: %v", grid)
}

func demoMaps(w *sectionWriter) {
	ages := map[string]int{}
	ages["Alice"] = 30
	ages["Bob"] = 25
	ages["Charlie"] = 35

	// map iteration order is random
	w.println("Map (sorted keys):")
	for _, name := range slices.Sorted(maps.Keys(ages)) {
		w.printf("  %s: %d", name, ages[name])
	}

	if age, ok := ages["Alice"]; ok {
		w.printf("Alice found, age: %d", age)
	}
	if _, ok := ages["Zoe"]; !ok {
		w.println("Zoe not found")
	}

	ages["David"] = 28
	w.printf("After insert, size: %d", len(ages))

	delete(ages, "Bob")
	w.printf("After delete, size: %d", len(ages))
}

func demoSets(w *sectionWriter) {
	set := map[int]struct{}{}
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		set[v] = struct{}{}
	}
	w.printf("Set: %s", joinInts(slices.Sorted(maps.Keys(set))))

	set[7] = struct{}{}
	set[1] = struct{}{}

	if _, ok := set[5]; ok {
		w.println("5 is in the set")
	}
	w.printf("Size: %d", len(set))
}
