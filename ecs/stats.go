package ecs

// WorldStats is a point-in-time summary of world storage, consumed by the
// debug overlay.
type WorldStats struct {
	TotalEntityCount   int
	ArchetypeCount     int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes one archetype.
type ArchetypeStats struct {
	Id             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks all archetypes and singletons and returns a summary.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		ArchetypeCount: len(w.archetypes),
		SingletonCount: len(w.singletons),
	}

	for _, archetype := range w.archetypes {
		names := make([]string, len(archetype.types))
		for i, t := range archetype.types {
			names[i] = t.String()
		}
		count := archetype.Len()
		stats.TotalEntityCount += count
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			Id:             archetype.id,
			ComponentTypes: names,
			EntityCount:    count,
		})
	}

	for t := range w.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	return stats
}
