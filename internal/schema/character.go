package schema

import (
	"worldgene/internal/model"
)

const (
	primaryMotivation   = "primary_motivation"
	secondaryMotivation = "secondary_motivation"
	noMotivation        = "none"
)

// Character returns the character personality schema. The Normalize rule
// keeps the secondary motivation distinct from the primary one: a duplicate
// is forced to "none". The rule holds after generation, mutation and
// crossover alike.
func Character() *Schema {
	return &Schema{
		Name: "character",
		Components: []Component{
			{Name: "extraversion", Domain: []string{
				"highly_extraverted", "moderately_extraverted", "neutral",
				"moderately_introverted", "highly_introverted",
			}},
			{Name: "openness", Domain: []string{
				"very_open", "somewhat_open", "balanced", "somewhat_traditional",
				"very_traditional",
			}},
			{Name: "conscientiousness", Domain: []string{
				"highly_conscientious", "somewhat_conscientious", "balanced",
				"somewhat_careless", "very_careless",
			}},
			{Name: "agreeableness", Domain: []string{
				"very_agreeable", "somewhat_agreeable", "neutral",
				"somewhat_disagreeable", "very_disagreeable",
			}},
			{Name: "neuroticism", Domain: []string{
				"very_neurotic", "somewhat_neurotic", "emotionally_stable",
				"resilient", "extremely_resilient",
			}},
			{Name: "morality", Domain: []string{
				"lawful_good", "neutral_good", "chaotic_good", "lawful_neutral",
				"true_neutral", "chaotic_neutral", "lawful_evil", "neutral_evil",
				"chaotic_evil",
			}},
			{Name: primaryMotivation, Domain: []string{
				"power", "wealth", "knowledge", "fame", "revenge", "love", "duty",
				"freedom", "survival", "pleasure", "ideology", "curiosity", "faith",
			}},
			{Name: secondaryMotivation, Domain: []string{
				"power", "wealth", "knowledge", "fame", "revenge", "love", "duty",
				"freedom", "survival", "pleasure", "ideology", "curiosity", "faith",
				"none",
			}},
			{Name: "ambition_level", Domain: []string{
				"obsessive", "highly_ambitious", "moderately_ambitious", "content",
				"unambitious",
			}},
			{Name: "social_status", Domain: []string{
				"outcast", "low", "average", "respected", "elite", "legendary",
			}},
			{Name: "loyalty", Domain: []string{
				"blindly_loyal", "generally_loyal", "conditional", "self_serving",
				"treacherous",
			}},
			{Name: "humor", Domain: []string{
				"none", "dry", "sarcastic", "silly", "dark", "witty", "self_deprecating",
			}},
			{Name: "confidence", Domain: []string{
				"extremely_insecure", "somewhat_insecure", "average", "confident",
				"overconfident",
			}},
			{Name: "major_flaw", Domain: []string{
				"arrogance", "greed", "cowardice", "paranoia", "naivety", "jealousy",
				"addiction", "dishonesty", "wrath", "prejudice", "obsession",
				"stubbornness", "indecisiveness", "none",
			}},
			{Name: "minor_quirk", Domain: []string{
				"talks_to_self", "uses_big_words", "fidgets", "always_hungry",
				"collects_trinkets", "afraid_of_something_common",
				"laughs_inappropriately", "formal_speech", "constant_jokes",
				"specific_ritual", "whistles_tunes", "refers_to_self_in_third_person",
				"none",
			}},
			{Name: "speech_complexity", Domain: []string{
				"very_simple", "straightforward", "average", "eloquent", "elaborate",
			}},
			{Name: "truthfulness", Domain: []string{
				"pathological_liar", "deceptive", "avoids_direct_lies", "honest",
				"brutally_honest",
			}},
			{Name: "talkativeness", Domain: []string{
				"silent", "taciturn", "average", "talkative", "extremely_talkative",
			}},
			{Name: "intelligence", Domain: []string{
				"very_low", "below_average", "average", "above_average", "exceptional",
				"genius",
			}},
			{Name: "education", Domain: []string{
				"none", "rudimentary", "average", "well_educated", "expert", "scholarly",
			}},
			{Name: "wisdom", Domain: []string{
				"foolish", "naive", "average_wisdom", "wise", "sage_like",
			}},
			{Name: "default_attitude", Domain: []string{
				"hostile", "suspicious", "cautious", "neutral", "friendly", "helpful",
			}},
			{Name: "attachment_style", Domain: []string{
				"avoidant", "anxious", "secure", "dismissive", "fearful",
			}},
			{Name: "bravery", Domain: []string{
				"cowardly", "cautious", "average", "brave", "reckless",
			}},
			{Name: "combat_style", Domain: []string{
				"avoids_all_combat", "defensive", "balanced", "aggressive",
				"berserker", "tactical", "dirty_fighter",
			}},
			{Name: "secret", Domain: []string{
				"none", "hidden_identity", "dark_past", "secret_knowledge",
				"hidden_agenda", "hidden_power", "forbidden_relationship",
				"criminal_history", "traumatic_experience", "prophecy", "conspiracy",
			}},
			{Name: "depth_trait", Domain: []string{
				"exactly_as_appears", "more_complex", "facade_hiding_opposite",
				"troubled_past", "secret_agenda", "none",
			}},
		},
		Normalize: func(v model.Vector) {
			if v[secondaryMotivation] == v[primaryMotivation] {
				v[secondaryMotivation] = noMotivation
			}
		},
	}
}
