package service

import "sort"

// SortProjects orders featured projects first, then by ascending order index.
// The sort is stable, so equal keys keep their storage order.
func SortProjects(items []ProjectResponse) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsFeatured != items[j].IsFeatured {
			return items[i].IsFeatured
		}
		return items[i].OrderIndex < items[j].OrderIndex
	})
}
