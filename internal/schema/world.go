package schema

// World returns the world-building schema: geography, society, technology,
// conflict, culture and distinctive features. Component and domain order are
// fixed; the categorical wire format depends on them.
func World() *Schema {
	return &Schema{
		Name: "world",
		Components: []Component{
			{Name: "terrain", Domain: []string{
				"mountains", "forests", "plains", "desert", "arctic", "coastal",
				"islands", "jungle", "swamp", "underground", "mixed",
			}},
			{Name: "climate", Domain: []string{
				"tropical", "arid", "temperate", "cold", "arctic", "varied",
			}},
			{Name: "resources", Domain: []string{
				"abundant", "balanced", "scarce", "depleted", "contested",
			}},
			{Name: "hazards", Domain: []string{
				"safe", "dangerous", "deadly",
			}},
			{Name: "government", Domain: []string{
				"monarchy", "democracy", "oligarchy", "republic", "theocracy",
				"anarchy", "feudal", "tribal", "empire", "dictatorship", "federation",
			}},
			{Name: "stability", Domain: []string{
				"stable", "unstable", "recovering", "declining", "fractured", "chaotic",
			}},
			{Name: "factions", Domain: []string{
				"united", "competing", "hostile", "hidden", "numerous", "rare",
			}},
			{Name: "tech_level", Domain: []string{
				"primitive", "medieval", "renaissance", "industrial", "modern",
				"futuristic", "post-apocalyptic", "varied",
			}},
			{Name: "magic", Domain: []string{
				"abundant", "common", "restricted", "rare", "forgotten", "forbidden", "none",
			}},
			{Name: "supernatural", Domain: []string{
				"integral", "common", "hidden", "rare", "feared", "worshipped", "none",
			}},
			{Name: "conflict", Domain: []string{
				"peace", "cold_war", "skirmishes", "open_war", "recovery", "ancient_grudges",
			}},
			{Name: "threats", Domain: []string{
				"monsters", "invaders", "natural", "political", "supernatural",
				"internal", "minimal",
			}},
			{Name: "danger_level", Domain: []string{
				"safe", "moderate", "dangerous", "deadly", "apocalyptic",
			}},
			{Name: "culture_type", Domain: []string{
				"unified", "diverse", "segregated", "hierarchical", "tribal", "cosmopolitan",
			}},
			{Name: "values", Domain: []string{
				"honor", "wealth", "knowledge", "tradition", "progress", "harmony",
				"power", "faith",
			}},
			{Name: "openness", Domain: []string{
				"xenophobic", "cautious", "diplomatic", "welcoming", "integrated",
			}},
			{Name: "special_features", Domain: []string{
				"ancient_ruins", "magical_anomalies", "unique_ecosystems",
				"lost_technology", "prophecies", "artifacts_of_power",
				"planar_connections", "divine_presence", "hidden_societies",
				"mysterious_phenomena", "none",
			}},
		},
	}
}
