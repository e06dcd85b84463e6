package registry

import (
	"math"
	"sort"
	"strings"
)

// OwnerStat aggregates the holdings of a single owner.
type OwnerStat struct {
	Owner     string
	Buildings int
	Area      float64
}

// OwnershipSummary tallies building count and land area per owner. Co-owned
// plots count once per owner with the area split evenly between them. Rows
// come back sorted by owner, case-insensitively.
func OwnershipSummary(plots []Plot) []OwnerStat {
	stats := make(map[string]*OwnerStat)
	for _, plot := range plots {
		owners := plot.Owners()
		share := plot.Shape.Area() / float64(len(owners))
		for _, owner := range owners {
			key := strings.ToLower(owner)
			stat, ok := stats[key]
			if !ok {
				stat = &OwnerStat{Owner: owner}
				stats[key] = stat
			}
			stat.Buildings++
			stat.Area = round2(stat.Area + share)
		}
	}

	result := make([]OwnerStat, 0, len(stats))
	for _, stat := range stats {
		result = append(result, *stat)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Owner) < strings.ToLower(result[j].Owner)
	})

	return result
}

// ZoneShare is a zoning type's percentage of the total registered land area.
type ZoneShare struct {
	Type    ZoneType
	Percent float64
}

// ZoningDistribution computes the land area share per zoning type, sorted by
// share, largest first.
func ZoningDistribution(plots []Plot) []ZoneShare {
	areas := make(map[ZoneType]float64)
	total := 0.0
	for _, plot := range plots {
		area := plot.Shape.Area()
		areas[plot.Type] += area
		total += area
	}

	shares := make([]ZoneShare, 0, len(areas))
	for zone, area := range areas {
		percent := 0.0
		if total > 0 {
			percent = round2(area * 100 / total)
		}
		shares = append(shares, ZoneShare{Type: zone, Percent: percent})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Type < shares[j].Type
	})

	return shares
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
